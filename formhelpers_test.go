package formhelpers_test

import (
	"bytes"
	"context"
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	formhelpers "github.com/goliatone/go-formhelpers"
	"github.com/goliatone/go-formhelpers/pkg/collection"
	pkgopenapi "github.com/goliatone/go-formhelpers/pkg/openapi"
	"github.com/goliatone/go-formhelpers/pkg/renderers/tui"
	"github.com/goliatone/go-formhelpers/pkg/testsupport"
)

type role struct {
	ID   string
	Name string
}

type user struct {
	Role string
}

func TestCollectionRadioButtons_Facade(t *testing.T) {
	roles := []role{{ID: "admin", Name: "Admin"}, {ID: "editor", Name: "Editor"}}

	out, err := formhelpers.CollectionRadioButtons("user", "role", roles,
		collection.Field("ID"), collection.Field("Name"),
		formhelpers.Options{Object: user{Role: "editor"}}, nil, nil)
	if err != nil {
		t.Fatalf("radio buttons: %v", err)
	}
	testsupport.AssertSelect(t, string(out), `input[type=radio][checked]#user_role_editor`)
	testsupport.AssertSelectText(t, string(out), `label[for=user_role_admin]`, "Admin")
}

func TestFieldsFor_Facade(t *testing.T) {
	builder := formhelpers.FieldsFor("post", nil)
	out, err := builder.CollectionCheckBoxes("tag_ids", []int{1, 2}, nil, nil, formhelpers.Options{}, nil, nil)
	if err != nil {
		t.Fatalf("check boxes: %v", err)
	}
	testsupport.AssertSelectCount(t, string(out), `input[type=checkbox][name="post[tag_ids][]"]`, 2)
	testsupport.AssertSelect(t, string(out), `input[type=hidden][name="post[tag_ids][]"][value=""]`)
}

func TestNewRegistry_RendersWithBothRenderers(t *testing.T) {
	field := testsupport.MustLoadField(t, filepath.Join("testdata", "fields", "interests.yaml"))

	driver := &scriptedDriver{multi: []int{0, 1}}
	registry, err := formhelpers.NewRegistry(formhelpers.WithTUIOptions(tui.WithPromptDriver(driver)))
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if diff := cmp.Diff([]string{"tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}

	html, err := formhelpers.Render(testsupport.Context(), registry, "", field, formhelpers.RenderOptions{})
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	markup := string(html)
	testsupport.AssertSelectText(t, markup, `fieldset#user_interest_ids legend`, "Interests")
	testsupport.AssertSelect(t, markup, `input[type=checkbox][checked]#user_interest_ids_1`)
	testsupport.AssertSelect(t, markup, `input[type=checkbox][disabled]#user_interest_ids_3`)

	answers, err := formhelpers.Render(testsupport.Context(), registry, "tui", field, formhelpers.RenderOptions{})
	if err != nil {
		t.Fatalf("render tui: %v", err)
	}
	if diff := testsupport.CompareGolden(`{"user":{"interest_ids":["1","2"]}}`, string(answers)); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}

	if _, err := formhelpers.Render(testsupport.Context(), registry, "pdf", field, formhelpers.RenderOptions{}); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
}

func TestEmbeddedFilesystems(t *testing.T) {
	if _, err := fs.Stat(formhelpers.EmbeddedTemplates(), "templates/collection.tmpl"); err != nil {
		t.Fatalf("collection template missing: %v", err)
	}
	css, err := fs.ReadFile(formhelpers.EmbeddedAssets(), "formhelpers-vanilla.css")
	if err != nil {
		t.Fatalf("stylesheet missing: %v", err)
	}
	if !bytes.Contains(css, []byte(".fh-collection")) {
		t.Fatalf("stylesheet does not define collection classes")
	}
}

func TestNewLoader_FS(t *testing.T) {
	loader := formhelpers.NewLoader(pkgopenapi.WithFileSystem(fstest.MapFS{
		"openapi.yaml": {Data: []byte("openapi: 3.0.3\n")},
	}))
	doc, err := loader.Load(context.Background(), pkgopenapi.SourceFromFS("openapi.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Location() != "openapi.yaml" {
		t.Fatalf("location = %q", doc.Location())
	}
}

type scriptedDriver struct {
	multi []int
}

func (d *scriptedDriver) Select(context.Context, tui.SelectConfig) (int, error) {
	return 0, nil
}

func (d *scriptedDriver) MultiSelect(context.Context, tui.SelectConfig) ([]int, error) {
	return d.multi, nil
}

func (d *scriptedDriver) Info(context.Context, string) error {
	return nil
}
