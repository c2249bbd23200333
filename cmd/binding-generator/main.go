// Package main provides the CLI entrypoint for binding-generator.
//
// binding-generator compiles an IDL package into idiomatic bindings
// for several target languages. This command loads the package's
// config file and wire-type manifest, validates the native-type
// overrides, and reports the result:
//   - Validate the language restriction and per-language override tables
//   - Resolve conversion function names and import lists
//   - Emit a human-readable or JSON diagnostics report
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"binding-generator/internal/config"
	"binding-generator/internal/diagnostic"
	"binding-generator/internal/idl"
)

// genLangs is a comma-separated language list flag. If the flag is
// repeated on the cmdline it is overridden. Duplicates within the list
// are ignored, and retain their original ordering.
type genLangs []config.GenLanguage

func (gls genLangs) String() string {
	var ret string
	for i, gl := range gls {
		if i > 0 {
			ret += ","
		}

		ret += gl.String()
	}

	return ret
}

func (gls *genLangs) Set(value string) error {
	*gls = genLangs{}

	seen := make(map[config.GenLanguage]bool)

	for _, str := range strings.Split(value, ",") {
		gl, err := config.GenLanguageFromString(str)
		if err != nil {
			return err
		}

		if !seen[gl] {
			seen[gl] = true
			*gls = append(*gls, gl)
		}
	}

	return nil
}

func main() {
	var (
		configPath  = flag.String("config", "bindings.yaml", "path to the config file")
		typesPath   = flag.String("types", "", "path to the wire-type manifest of the owning package")
		jsonOut     = flag.Bool("json", false, "emit the validation report as JSON")
		failFast    = flag.Bool("fail-fast", false, "stop at the first language table with errors")
		strictKinds = flag.Bool("strict-kinds", false, "treat kind mismatches as errors")
		dump        = flag.Bool("dump", false, "dump the resolved overrides (debugging)")
	)

	langs := genLangs(config.GenLanguageAll[:])
	flag.Var(&langs, "langs", "comma-separated target languages to generate")
	flag.Parse()

	os.Exit(run(*configPath, *typesPath, langs, config.Options{
		FailFast:    *failFast,
		StrictKinds: *strictKinds,
	}, *jsonOut, *dump))
}

func run(configPath, typesPath string, langs genLangs, opts config.Options, jsonOut, dump bool) int {
	if typesPath == "" {
		fmt.Fprintln(os.Stderr, "missing -types: a wire-type manifest is required to resolve overrides")
		return 2
	}

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	reg, err := idl.LoadManifest(typesPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	validated, diags := config.Validate(cfg, reg, opts)

	var effective []config.GenLanguage

	if validated != nil {
		effective, err = validated.EffectiveLanguages(langs)
		if err != nil {
			// Run-level condition, reported once.
			diags.AddError(diagnostic.CodeNoGeneratableLanguages, err.Error(), "", "")
			validated = nil
		}
	}

	if jsonOut {
		if err := diags.WriteJSON(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	} else {
		for _, d := range diags.Errors {
			fmt.Fprintln(os.Stderr, "error:", d)
		}

		for _, d := range diags.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", d)
		}

		for _, d := range diags.Infos {
			fmt.Fprintln(os.Stderr, "info:", d)
		}
	}

	if validated == nil {
		return 1
	}

	if !jsonOut {
		fmt.Printf("config %s: ok, generating for %s\n", configPath, genLangs(effective))
	}

	if dump {
		for _, lang := range effective {
			overrides := validated.OverridesFor(lang)
			if len(overrides) == 0 {
				continue
			}

			fmt.Printf("=== %s ===\n", lang)
			spew.Dump(overrides)
		}
	}

	return 0
}
