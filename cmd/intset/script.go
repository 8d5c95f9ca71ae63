package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/scylladb/go-set/strset"
	"go.uber.org/zap"

	"github.com/rdeusser/intset/intset"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgs           = errors.New("wrong number of arguments")
	ErrUnionTooLarge  = errors.New("union would exceed capacity")
)

type command struct {
	// minimum number of arguments; variadic commands accept more.
	args     int
	variadic bool
	run      func(in *Interpreter, args []string) error
}

var commands = map[string]command{
	"add":       {args: 2, variadic: true, run: (*Interpreter).add},
	"remove":    {args: 2, variadic: true, run: (*Interpreter).remove},
	"contains":  {args: 2, run: (*Interpreter).contains},
	"size":      {args: 1, run: (*Interpreter).size},
	"empty":     {args: 1, run: (*Interpreter).empty},
	"reset":     {args: 1, run: (*Interpreter).reset},
	"union":     {args: 3, run: (*Interpreter).union},
	"intersect": {args: 3, run: (*Interpreter).intersect},
	"subtract":  {args: 3, run: (*Interpreter).subtract},
	"subset":    {args: 2, run: (*Interpreter).subset},
	"equal":     {args: 2, run: (*Interpreter).equal},
	"dump":      {args: 1, run: (*Interpreter).dump},
}

// Interpreter runs set scripts. Sets are referred to by name and created
// empty the first time a name is used.
type Interpreter struct {
	out    io.Writer
	logger *zap.Logger
	sets   map[string]*intset.IntSet
	names  *strset.Set
}

func NewInterpreter(out io.Writer, logger *zap.Logger) *Interpreter {
	return &Interpreter{
		out:    out,
		logger: logger,
		sets:   make(map[string]*intset.IntSet),
		names:  strset.New(),
	}
}

// Run executes every command read from r and stops at the first error.
func (in *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineno := 0

	for scanner.Scan() {
		lineno++

		if err := in.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	names := in.names.List()
	sort.Strings(names)
	in.logger.Debug("script finished", zap.Int("lines", lineno), zap.Strings("sets", names))

	return nil
}

// Exec runs a single command line. Blank lines and comments are ignored.
func (in *Interpreter) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name, args := fields[0], fields[1:]

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}

	if len(args) < cmd.args || (!cmd.variadic && len(args) != cmd.args) {
		return fmt.Errorf("%s takes %d, got %d: %w", name, cmd.args, len(args), ErrArgs)
	}

	in.logger.Debug("exec", zap.String("command", name), zap.Strings("args", args))

	return cmd.run(in, args)
}

// Set returns the set with the given name, creating it if necessary.
func (in *Interpreter) Set(name string) *intset.IntSet {
	s, ok := in.sets[name]
	if !ok {
		s = intset.New()
		in.sets[name] = s
		in.names.Add(name)
	}

	return s
}

func (in *Interpreter) add(args []string) error {
	s := in.Set(args[0])

	return in.each(args[1:], func(v int) bool {
		added := s.Add(v)
		if !added && !s.Contains(v) {
			in.logger.Warn("set is full", zap.String("set", args[0]), zap.Int("value", v), zap.Array("values", s))
		}
		return added
	})
}

func (in *Interpreter) remove(args []string) error {
	s := in.Set(args[0])
	return in.each(args[1:], s.Remove)
}

func (in *Interpreter) contains(args []string) error {
	return in.each(args[1:], in.Set(args[0]).Contains)
}

func (in *Interpreter) size(args []string) error {
	return in.println(strconv.Itoa(in.Set(args[0]).Size()))
}

func (in *Interpreter) empty(args []string) error {
	return in.println(strconv.FormatBool(in.Set(args[0]).IsEmpty()))
}

func (in *Interpreter) reset(args []string) error {
	in.Set(args[0]).Reset()
	return nil
}

func (in *Interpreter) union(args []string) error {
	a, b := in.Set(args[1]), in.Set(args[2])

	if n := a.UnionSize(b); n > intset.MaxSize {
		return fmt.Errorf("%s and %s have %d distinct values, capacity is %d: %w",
			args[1], args[2], n, intset.MaxSize, ErrUnionTooLarge)
	}

	in.store(args[0], a.UnionWith(b))
	return nil
}

func (in *Interpreter) intersect(args []string) error {
	in.store(args[0], in.Set(args[1]).Intersect(in.Set(args[2])))
	return nil
}

func (in *Interpreter) subtract(args []string) error {
	in.store(args[0], in.Set(args[1]).Subtract(in.Set(args[2])))
	return nil
}

func (in *Interpreter) subset(args []string) error {
	return in.println(strconv.FormatBool(in.Set(args[0]).IsSubsetOf(in.Set(args[1]))))
}

func (in *Interpreter) equal(args []string) error {
	return in.println(strconv.FormatBool(intset.Equal(in.Set(args[0]), in.Set(args[1]))))
}

func (in *Interpreter) dump(args []string) error {
	if err := in.Set(args[0]).Dump(in.out); err != nil {
		return err
	}

	return in.println("")
}

func (in *Interpreter) store(name string, s *intset.IntSet) {
	in.Set(name)
	in.sets[name] = s
	in.logger.Debug("stored", zap.String("set", name), zap.Array("values", s))
}

// each parses values and prints the result of fn for each of them on one line.
func (in *Interpreter) each(values []string, fn func(int) bool) error {
	results := make([]string, 0, len(values))

	for _, value := range values {
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}

		results = append(results, strconv.FormatBool(fn(v)))
	}

	return in.println(strings.Join(results, " "))
}

func (in *Interpreter) println(s string) error {
	_, err := fmt.Fprintln(in.out, s)
	return err
}
