// Command update-testdata regenerates golden files by running the tests of
// every package that has a testdata directory with -update.
package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/rdeusser/intset/logging"
)

var errNotModuleRoot = errors.New("must be run from the module root")

func ensureModPath() error {
	if _, err := os.Stat("go.mod"); err != nil {
		return errNotModuleRoot
	}
	return nil
}

func findTestData() ([]string, error) {
	var paths []string

	err := fs.WalkDir(os.DirFS("."), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		// Skip hidden and underscore directories the go tool ignores too.
		if path != "." && (d.Name()[0] == '.' || d.Name()[0] == '_') {
			return fs.SkipDir
		}

		if d.Name() == "testdata" {
			paths = append(paths, filepath.Dir(path))
			return fs.SkipDir
		}

		return nil
	})

	return paths, err
}

func updateTestData(dir, run string) error {
	args := []string{"test", "-timeout", "2m"}
	if run != "" {
		args = append(args, "-run", run)
	}
	args = append(args, ".", "-update")

	cmd := exec.Command("go", args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

func main() {
	var run string

	flag := flag.NewFlagSet("update-testdata", flag.ContinueOnError)
	flag.StringVar(&run, "run", "", "only run tests matching this regular expression")

	if err := flag.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger, err := logging.New(logging.Options{Name: "update-testdata"})
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := ensureModPath(); err != nil {
		logger.Fatal("finding module", zap.Error(err))
	}

	paths, err := findTestData()
	if err != nil {
		logger.Fatal("finding testdata", zap.Error(err))
	}

	var failed []string

	for _, path := range paths {
		logger.Info("updating testdata", zap.String("package", path))

		if err := updateTestData(path, run); err != nil {
			logger.Error("updating testdata", zap.String("package", path), zap.Error(err))
			failed = append(failed, path)
		}
	}

	if len(failed) > 0 {
		logger.Fatal("some packages failed to update", zap.Strings("packages", failed))
	}

	logger.Info("successfully updated testdata", zap.Int("packages", len(paths)))
}
