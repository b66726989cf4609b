package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/dimex"
	"github.com/npillmayer/schuko/testconfig"
)

func TestRunArabic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var out bytes.Buffer
	opts := options{locale: "ar", dim: "numeral"}
	if err := run(opts, strings.NewReader("خمسة و عشرون\n1,234.5\n"), &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 tokens, have %d: %s", len(lines), out.String())
	}
	var tok struct {
		Dim   string `json:"dim"`
		Start int    `json:"start"`
		End   int    `json:"end"`
		Body  string `json:"body"`
		Value struct {
			Value float64 `json:"value"`
		} `json:"value"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &tok); err != nil {
		t.Fatal(err)
	}
	if tok.Dim != "numeral" || tok.Value.Value != 25 || tok.Body != "خمسة و عشرون" {
		t.Errorf("unexpected token %s", lines[0])
	}
	t.Logf("%s", out.String())
}

func TestRunErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var out bytes.Buffer
	err := run(options{locale: "ar", dim: "time"}, strings.NewReader("x"), &out)
	if !errors.Is(err, dimex.ErrUnknownDimension) {
		t.Errorf("expected unknown dimension, have %v", err)
	}
	err = run(options{locale: "et", dim: "ordinal", maxIterations: 1},
		strings.NewReader("kahekümne kolmas"), &out)
	if !errors.Is(err, dimex.ErrIterationLimit) {
		t.Errorf("expected iteration limit, have %v", err)
	}
}

func TestListLocales(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var out bytes.Buffer
	if err := run(options{listLocales: true}, nil, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "ar\t[numeral]\net\t[ordinal]\n" {
		t.Errorf("unexpected locale list %q", out.String())
	}
}
