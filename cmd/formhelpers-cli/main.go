package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	formhelpers "github.com/goliatone/go-formhelpers"
	"github.com/goliatone/go-formhelpers/pkg/catalog"
	"github.com/goliatone/go-formhelpers/pkg/model"
	pkgopenapi "github.com/goliatone/go-formhelpers/pkg/openapi"
	"github.com/goliatone/go-formhelpers/pkg/render"
	"github.com/goliatone/go-formhelpers/pkg/renderers/tui"
	"github.com/goliatone/go-formhelpers/pkg/renderers/vanilla"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		if errors.Is(err, tui.ErrAborted) {
			log.Printf("aborted")
			os.Exit(130)
		}
		log.Fatalf("formhelpers: %v", err)
	}
}

type options struct {
	catalogDir  string
	collection  string
	list        bool
	renderer    string
	engine      string
	checked     string
	errors      string
	output      string
	format      string
	openapi     string
	operation   string
	property    string
	object      string
	interactive bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("formhelpers-cli", flag.ContinueOnError)
	fs.StringVar(&opts.catalogDir, "catalog", "", "catalog directory (embedded sample catalog if empty)")
	fs.StringVar(&opts.collection, "collection", "", "catalog collection to render")
	fs.BoolVar(&opts.list, "list", false, "list catalog collections and exit")
	fs.StringVar(&opts.renderer, "renderer", "vanilla", "renderer to use (vanilla|tui)")
	fs.StringVar(&opts.engine, "engine", "pongo2", "template engine for the vanilla renderer (pongo2|go-template)")
	fs.StringVar(&opts.checked, "checked", "", "comma separated values to check, overriding the field defaults")
	fs.StringVar(&opts.errors, "errors", "", "comma separated validation messages to display")
	fs.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	fs.StringVar(&opts.format, "format", string(tui.OutputFormatJSON), "tui answer format (json|form|pretty)")
	fs.StringVar(&opts.openapi, "openapi", "", "OpenAPI document path or URL")
	fs.StringVar(&opts.operation, "operation", "", "operation ID holding the enum property")
	fs.StringVar(&opts.property, "property", "", "dotted request body property (user.role)")
	fs.StringVar(&opts.object, "object", "", "object name overriding the one derived from -property")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt in the terminal (implies -renderer tui)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.interactive {
		opts.renderer = "tui"
	}
	switch opts.engine {
	case "pongo2", "go-template":
	default:
		return options{}, fmt.Errorf("unknown template engine %q", opts.engine)
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	if opts.list {
		store, err := loadCatalog(opts.catalogDir)
		if err != nil {
			return err
		}
		for _, name := range store.Names() {
			entry, _ := store.Entry(name)
			fmt.Fprintf(stdout, "%s\t%s\t%s\n", name, entry.Field.Kind, entry.Source)
		}
		return nil
	}

	field, err := resolveField(ctx, opts)
	if err != nil {
		return err
	}

	if opts.renderer == "tui" && !isInteractive() {
		return errors.New("tui renderer needs an interactive terminal")
	}

	tuiOptions := []tui.Option{tui.WithOutputFormat(tui.OutputFormat(opts.format))}
	if rows := terminalRows(); rows > 8 {
		tuiOptions = append(tuiOptions, tui.WithPageSize(rows-4))
	}
	registryOptions := []formhelpers.RegistryOption{formhelpers.WithTUIOptions(tuiOptions...)}
	if opts.engine == "go-template" {
		registryOptions = append(registryOptions, formhelpers.WithVanillaOptions(vanilla.WithGoTemplateEngine()))
	}
	registry, err := formhelpers.NewRegistry(registryOptions...)
	if err != nil {
		return err
	}

	renderOpts := render.RenderOptions{Errors: splitList(opts.errors)}
	if strings.TrimSpace(opts.checked) != "" {
		renderOpts.Values = splitList(opts.checked)
	}

	out, err := formhelpers.Render(ctx, registry, opts.renderer, field, renderOpts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = fmt.Fprintln(stdout, string(out))
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Printf("collection written to %s", opts.output)
	return nil
}

func resolveField(ctx context.Context, opts options) (model.CollectionField, error) {
	if strings.TrimSpace(opts.openapi) != "" {
		if opts.operation == "" || opts.property == "" {
			return model.CollectionField{}, errors.New("-openapi requires -operation and -property")
		}
		src, err := pkgopenapi.SourceFromLocation(opts.openapi)
		if err != nil {
			return model.CollectionField{}, err
		}
		loader := formhelpers.NewLoader(pkgopenapi.WithHTTPFallback(0))
		doc, err := loader.Load(ctx, src)
		if err != nil {
			return model.CollectionField{}, fmt.Errorf("load %s: %w", opts.openapi, err)
		}
		field, err := pkgopenapi.EnumField(ctx, doc, opts.operation, opts.property)
		if err != nil {
			return model.CollectionField{}, err
		}
		if opts.object != "" {
			field.Object = opts.object
		}
		return field, nil
	}

	if strings.TrimSpace(opts.collection) == "" {
		return model.CollectionField{}, errors.New("either -collection or -openapi is required")
	}
	store, err := loadCatalog(opts.catalogDir)
	if err != nil {
		return model.CollectionField{}, err
	}
	field, ok := store.Field(opts.collection)
	if !ok {
		return model.CollectionField{}, fmt.Errorf("collection %q not found (have %s)", opts.collection, strings.Join(store.Names(), ", "))
	}
	if opts.object != "" {
		field.Object = opts.object
	}
	return field, nil
}

func loadCatalog(dir string) (*catalog.Store, error) {
	if strings.TrimSpace(dir) == "" {
		return catalog.LoadFS(catalog.EmbeddedFS())
	}
	return catalog.LoadFS(os.DirFS(dir))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func terminalRows() int {
	_, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return rows
}
