package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formhelpers/pkg/testsupport"
)

func TestRun_CatalogCollection(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-collection", "roles", "-checked", "viewer", "-errors", "Role is required"}, &stdout)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	markup := stdout.String()
	testsupport.AssertSelect(t, markup, `input[type=radio][checked]#user_role_viewer`)
	testsupport.AssertNoSelect(t, markup, `input[checked]#user_role_editor`)
	testsupport.AssertSelectText(t, markup, `fieldset ul li`, "Role is required")
}

func TestRun_GoTemplateEngine(t *testing.T) {
	var builtin, upstream bytes.Buffer
	args := []string{"-collection", "interests", "-checked", "2"}
	if err := run(context.Background(), args, &builtin); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run(context.Background(), append(args, "-engine", "go-template"), &upstream); err != nil {
		t.Fatalf("run with go-template: %v", err)
	}
	if upstream.String() != builtin.String() {
		t.Fatalf("engines disagree:\npongo2      %s\ngo-template %s", builtin.String(), upstream.String())
	}
	testsupport.AssertSelect(t, upstream.String(), `input[type=checkbox][checked][value="2"]`)
}

func TestRun_List(t *testing.T) {
	var stdout bytes.Buffer
	if err := run(context.Background(), []string{"-list"}, &stdout); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, name := range []string{"roles", "interests", "newsletter_frequency"} {
		if !strings.Contains(stdout.String(), name) {
			t.Errorf("listing missing %q:\n%s", name, stdout.String())
		}
	}
}

func TestRun_OpenAPIToFile(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "openapi.yaml")
	doc := `openapi: 3.0.3
info: {title: Posts, version: "1"}
paths:
  /posts:
    post:
      operationId: createPost
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                status:
                  type: string
                  enum: [draft, published]
                  default: draft
      responses:
        "201": {description: created}
`
	if err := os.WriteFile(spec, []byte(doc), 0o600); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	output := filepath.Join(dir, "out.html")

	err := run(context.Background(), []string{
		"-openapi", spec, "-operation", "createPost", "-property", "status", "-object", "post", "-output", output,
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	testsupport.AssertSelect(t, string(data), `input[type=radio][checked][name="post[status]"]#post_status_draft`)
}

func TestRun_Errors(t *testing.T) {
	cases := map[string][]string{
		"no source":          {},
		"unknown":            {"-collection", "missing"},
		"openapi incomplete": {"-openapi", "spec.yaml"},
		"unknown engine":     {"-collection", "roles", "-engine", "jinja"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if err := run(context.Background(), args, &bytes.Buffer{}); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}
