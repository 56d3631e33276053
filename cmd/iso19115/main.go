package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/converter"
	"github.com/auscope/iso19115/i18n"
	"github.com/auscope/iso19115/internal/config"
	"github.com/auscope/iso19115/keyword"
	"github.com/auscope/iso19115/metrics"
	"github.com/auscope/iso19115/model"
	"github.com/auscope/iso19115/resolver"
	"github.com/auscope/iso19115/source"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		fatalf("config: %v", err)
	}
	switch os.Args[1] {
	case "convert":
		os.Exit(convertCmd(cfg, os.Args[2:]))
	case "profiles":
		profilesCmd(cfg, os.Args[2:])
	case "codelists":
		codelistsCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `iso19115 CLI

Usage:
  iso19115 convert [-profile NAME] [-profiles FILE] [-thesauri FILE] [-format json|yaml] [-indent] [-dump] [-metrics] [FILE...]
  iso19115 profiles [-profiles FILE]
  iso19115 codelists [-name QNAME [-check LITERAL]]

Records are read from the files given, or stdin. JSON input may be one
object, an array or a stream of objects; YAML input may hold several
documents. Each converted document is written to stdout as one JSON line.

Environment:
  ISO19115_PROFILE, ISO19115_PROFILES_FILE, ISO19115_THESAURI_FILE,
  ISO19115_LOG_LEVEL, ISO19115_LOG_FORMAT, ISO19115_CONCURRENCY`)
}

func newLogger(cfg config.CLI) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func loadProfiles(path string) map[string]converter.Profile {
	if path == "" {
		return converter.BuiltinProfiles()
	}
	f, err := os.Open(path)
	if err != nil {
		fatalf("profiles: %v", err)
	}
	defer f.Close()
	ps, err := converter.LoadProfiles(f)
	if err != nil {
		fatalf("profiles: %v", err)
	}
	return ps
}

func loadThesauri(path string) *keyword.Registry {
	if path == "" {
		return keyword.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		fatalf("thesauri: %v", err)
	}
	defer f.Close()
	reg, err := keyword.LoadThesauri(f)
	if err != nil {
		fatalf("thesauri: %v", err)
	}
	return reg
}

func convertCmd(cfg config.CLI, args []string) int {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	profileName := fs.String("profile", cfg.Profile, "profile name")
	profilesFile := fs.String("profiles", cfg.ProfilesFile, "YAML file with extra profiles")
	thesauriFile := fs.String("thesauri", cfg.ThesauriFile, "YAML file with extra thesauri")
	format := fs.String("format", "json", "input format: json or yaml")
	indent := fs.Bool("indent", false, "indent output documents")
	dump := fs.Bool("dump", false, "dump each document's Go value to stderr")
	showMetrics := fs.Bool("metrics", false, "print conversion metrics to stderr when done")
	lang := fs.String("lang", "en", "language of issue messages")
	concurrency := fs.Int("concurrency", cfg.Concurrency, "records converted at once")
	_ = fs.Parse(args)

	logger := newLogger(cfg)
	i18n.SetLanguage(*lang)

	profiles := loadProfiles(*profilesFile)
	profile, ok := profiles[*profileName]
	if !ok {
		fatalf("unknown profile %q (have %s)", *profileName, strings.Join(converter.ProfileNames(profiles), ", "))
	}

	reg := prometheus.NewRegistry()
	conv, err := converter.New(profile,
		converter.WithLogger(logger),
		converter.WithThesauri(loadThesauri(*thesauriFile)),
		converter.WithMetrics(metrics.New(reg)),
	)
	if err != nil {
		fatalf("converter: %v", err)
	}

	recs, err := readInputs(os.Stdin, fs.Args(), source.Format(*format))
	if err != nil {
		fatalf("input: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := conv.ConvertAll(ctx, recs, *concurrency)
	if err != nil {
		logger.Error("conversion interrupted", "error", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if *indent {
		enc.SetIndent("", "  ")
	}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Error("conversion failed", "record", r.Index, "class", iso.Classify(r.Err).String(), "error", r.Err)
			continue
		}
		if *dump {
			spew.Fdump(os.Stderr, r.Document)
		}
		if err := enc.Encode(r.Document); err != nil {
			fatalf("output: %v", err)
		}
	}
	if *showMetrics {
		printMetrics(os.Stderr, reg)
	}
	logger.Info("done", "records", len(recs), "failed", failed)
	if failed > 0 || err != nil {
		return 1
	}
	return 0
}

// readInputs reads every file concurrently; "-" or no files means stdin.
// Stdin is read once, at the position of its first "-".
func readInputs(stdin io.Reader, paths []string, format source.Format) ([]source.Record, error) {
	if len(paths) == 0 {
		return source.ReadAll(stdin, format)
	}
	batches := make([][]source.Record, len(paths))
	var g errgroup.Group
	stdinSeen := false
	for i, p := range paths {
		if p == "-" {
			if stdinSeen {
				continue
			}
			stdinSeen = true
		}
		g.Go(func() error {
			if p == "-" {
				recs, err := source.ReadAll(stdin, format)
				batches[i] = recs
				return err
			}
			f, err := os.Open(p)
			if err != nil {
				return err
			}
			defer f.Close()
			recs, err := source.ReadAll(f, format)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			batches[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []source.Record
	for _, b := range batches {
		out = append(out, b...)
	}
	return out, nil
}

func printMetrics(w io.Writer, g prometheus.Gatherer) {
	mfs, err := g.Gather()
	if err != nil {
		fmt.Fprintf(w, "metrics: %v\n", err)
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "%s{%s} count=%d sum=%gs\n", mf.GetName(), strings.Join(labels, ","), h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
}

func profilesCmd(cfg config.CLI, args []string) {
	fs := flag.NewFlagSet("profiles", flag.ExitOnError)
	profilesFile := fs.String("profiles", cfg.ProfilesFile, "YAML file with extra profiles")
	_ = fs.Parse(args)

	profiles := loadProfiles(*profilesFile)
	for _, name := range converter.ProfileNames(profiles) {
		p := profiles[name]
		stages := make([]string, len(p.Stages))
		for i, s := range p.Stages {
			stages[i] = string(s)
		}
		fmt.Printf("%s\n  stages:   %s\n  thesauri: %s\n", name, strings.Join(stages, " -> "), strings.Join(p.Settings.Thesauri, ", "))
	}
}

func codelistsCmd(args []string) {
	fs := flag.NewFlagSet("codelists", flag.ExitOnError)
	name := fs.String("name", "", "print the members of one codelist")
	value := fs.String("check", "", "with -name: check that a literal is a member")
	_ = fs.Parse(args)

	if *name != "" && *value != "" {
		v, err := resolver.Default().Make(*name, *value)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("%s %q ok\n", v.CodeList(), v.Value())
		return
	}
	found := false
	for _, cl := range model.Codelists() {
		if *name != "" && cl.QName != *name {
			continue
		}
		found = true
		if len(cl.Members) == 0 {
			fmt.Printf("%s (open: ISO 639-2/T codes)\n", cl.QName)
			continue
		}
		fmt.Printf("%s\n  %s\n", cl.QName, strings.Join(cl.Members, " "))
	}
	if !found {
		fatalf("unknown codelist %q", *name)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
