// Package model is the typed ISO 19115-3 document model.
//
// Types are named after their ISO classes and grouped in files by namespace
// (cit, gco, gex, lan, mcc, mco, mdb, mdq, mri, mrl, mrs, msr). Every type
// reports its namespace-qualified name through QName. Codelists are closed
// string types validated at construction; fields restricted to a codelist
// carry an iso:"codelist=ns:Name" struct tag that the resolver package reads.
//
// Documents are accumulated through a Builder and handed over by Freeze.
package model
