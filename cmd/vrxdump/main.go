/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command vrxdump prints the wire records of the values in a JSON document.
//
//	vrxdump [-config file] [-path gjson-path] [-hidden a,b] [-async] [file]
//
// A JSON object is treated as a frame: each member is one binding. Any other
// document is a single binding named "value". Arrays of numbers are decoded
// as []float64 and expanded by the numeric-array extension.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"dirpx.dev/vrx"
	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/config"
	_ "dirpx.dev/vrx/ext/ndarray"
)

// Version information (set via ldflags during build).
var version = "dev"

var (
	errInvalidJSON = errors.New("input is not valid JSON")
	errNoMatch     = errors.New("path matched nothing")
)

type options struct {
	configPath string
	path       string
	hidden     string
	async      bool
	expand     string
	input      string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := slog.New(slog.NewTextHandler(stderr, nil))

	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Error("vrxdump: configuration", slog.Any("err", err))
		return 1
	}
	vrx.SetAll(&cfg, nil, log)

	data, err := readInput(opts.input, stdin)
	if err != nil {
		log.Error("vrxdump: reading input", slog.String("input", opts.input), slog.Any("err", err))
		return 1
	}

	doc, err := selectDocument(data, opts.path)
	if err != nil {
		log.Error("vrxdump: selecting document", slog.String("path", opts.path), slog.Any("err", err))
		return 1
	}

	bindings := Bindings(doc)
	if opts.expand != "" {
		out, err := vrx.ExpandPath(bindings, strings.Split(opts.expand, ".")...)
		if err != nil {
			log.Error("vrxdump: expanding", slog.String("expand", opts.expand), slog.Any("err", err))
			return 1
		}
		fmt.Fprint(stdout, out)
		return 0
	}

	fmt.Fprint(stdout, vrx.Serialize(bindings, hiddenSet(opts.hidden)))
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	var showVersion bool

	fs := flag.NewFlagSet("vrxdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to a .toml or .yaml configuration file")
	fs.StringVar(&opts.path, "path", "", "gjson path selecting the document to dump")
	fs.StringVar(&opts.hidden, "hidden", "", "Comma-separated binding names to mark hidden")
	fs.BoolVar(&opts.async, "async", false, "Defer evaluation of non-scalar values")
	fs.StringVar(&opts.expand, "expand", "", "Dot-separated child path to expand instead of dumping the frame")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if showVersion {
		fmt.Fprintf(stderr, "vrxdump %s\n", version)
		return opts, flag.ErrHelp
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "vrxdump: at most one input file")
		return opts, errors.New("too many arguments")
	}
	opts.input = fs.Arg(0)
	return opts, nil
}

func loadConfig(opts options) (cfg apis.Config, err error) {
	cfg = config.DefaultConfig()
	if opts.configPath != "" {
		if cfg, err = config.LoadInto(cfg, opts.configPath); err != nil {
			return cfg, err
		}
	}
	if cfg, err = config.FromEnv(cfg); err != nil {
		return cfg, err
	}
	if opts.async {
		cfg.LoadValuesAsync = true
	}
	return cfg, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func selectDocument(data []byte, path string) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, errInvalidJSON
	}
	doc := gjson.ParseBytes(data)
	if path == "" {
		return doc, nil
	}
	doc = doc.Get(path)
	if !doc.Exists() {
		return doc, fmt.Errorf("%w: %q", errNoMatch, path)
	}
	return doc, nil
}

func hiddenSet(list string) map[string]bool {
	if list == "" {
		return nil
	}
	out := make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out[name] = true
		}
	}
	return out
}
