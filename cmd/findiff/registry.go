package main

import (
	"fmt"
	"sort"
	"strings"
)

// replFunc handles one parsed REPL line. args excludes the command word.
type replFunc func(r *repl, args []string) error

// command is one REPL verb with its aliases and help strings.
type command struct {
	name    string
	aliases []string
	usage   string
	desc    string
	run     replFunc
}

// registry resolves command words and aliases to handlers.
type registry struct {
	primary map[string]command
	lookup  map[string]string
}

func newRegistry() *registry {
	return &registry{
		primary: make(map[string]command),
		lookup:  make(map[string]string),
	}
}

func (r *registry) register(cmd command) error {
	cmd.name = strings.TrimSpace(cmd.name)
	if cmd.name == "" {
		return fmt.Errorf("registry: empty command name")
	}
	if cmd.run == nil {
		return fmt.Errorf("registry: %q has no handler", cmd.name)
	}
	if _, ok := r.lookup[cmd.name]; ok {
		return fmt.Errorf("registry: duplicate command %q", cmd.name)
	}

	r.primary[cmd.name] = cmd
	r.lookup[cmd.name] = cmd.name

	for _, alias := range cmd.aliases {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			continue
		}
		if _, ok := r.lookup[alias]; ok {
			return fmt.Errorf("registry: duplicate alias %q", alias)
		}
		r.lookup[alias] = cmd.name
	}
	return nil
}

func (r *registry) resolve(name string) (command, bool) {
	if primary, ok := r.lookup[strings.TrimSpace(name)]; ok {
		cmd, ok := r.primary[primary]
		return cmd, ok
	}
	return command{}, false
}

func (r *registry) names() []string {
	out := make([]string, 0, len(r.primary))
	for name := range r.primary {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
