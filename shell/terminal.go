// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package shell implements a terminal console handler for user defined
// commands.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/term"
)

// CmdFn represents a command handler.
type CmdFn func(iface *Interface, arg []string) (res string, err error)

// Cmd represents a shell command.
type Cmd struct {
	// Name is the command name.
	Name string

	// Args defines the number of command arguments, meant to be in the
	// Pattern capturing brackets.
	Args int

	// Pattern defines the command syntax and arguments.
	Pattern *regexp.Regexp

	// Syntax defines the Help() command syntax field.
	Syntax string

	// Help defines the Help() command description field.
	Help string

	// Fn defines the command handler.
	Fn CmdFn
}

var cmds = make(map[string]*Cmd)

// Add registers a terminal interface command.
func Add(cmd Cmd) {
	cmds[cmd.Name] = &cmd
}

// Interface represents a terminal interface.
type Interface struct {
	// Banner represents the welcome message
	Banner string

	// ReadWriter represents the terminal connection
	ReadWriter io.ReadWriter

	// Terminal instance
	Term *term.Terminal
}

// Help returns a list of all registered commands.
func (iface *Interface) Help() string {
	var help []string
	var width int

	for _, cmd := range cmds {
		if l := len(cmd.Name + cmd.Syntax); l > width {
			width = l
		}
	}

	for _, cmd := range cmds {
		help = append(help, fmt.Sprintf("%-*s # %s",
			width+1, cmd.Name+" "+cmd.Syntax, cmd.Help))
	}

	sort.Strings(help)

	return strings.Join(help, "\n")
}

func (iface *Interface) handleLine(line string) (err error) {
	var match *Cmd
	var arg []string
	var res string

	line = strings.TrimSpace(line)

	if len(line) == 0 {
		return
	}

	for _, cmd := range cmds {
		if cmd.Pattern == nil {
			if cmd.Name == line {
				match = cmd
				break
			}
		} else if m := cmd.Pattern.FindStringSubmatch(line); len(m) > 0 && (len(m)-1 == cmd.Args) {
			match = cmd
			arg = m[1:]
			break
		}
	}

	if match == nil {
		return errors.New("unknown command, type `help`")
	}

	if res, err = match.Fn(iface, arg); err != nil {
		return
	}

	if len(res) > 0 {
		fmt.Fprintln(iface.Term, res)
	}

	return
}

func (iface *Interface) readLine() error {
	s, err := iface.Term.ReadLine()

	if err == io.EOF {
		return err
	}

	if err != nil {
		log.Printf("readline error, %v", err)
		return nil
	}

	if err = iface.handleLine(s); err != nil {
		if err == io.EOF {
			return err
		}

		fmt.Fprintf(iface.Term, "command error, %v\n", err)
	}

	return nil
}

// Start handles registered commands over the interface ReadWriter.
func (iface *Interface) Start() {
	iface.Term = term.NewTerminal(iface.ReadWriter, "> ")

	fmt.Fprintf(iface.Term, "\n%s\n\n", iface.Banner)
	fmt.Fprintf(iface.Term, "%s\n", iface.Help())

	for {
		if err := iface.readLine(); err != nil {
			return
		}
	}
}
