// Copyright (C) 2024  The gosvm authors

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"gosvm/pkg/assembler"
	"gosvm/pkg/parser"
)

var outvar string
var debugvar bool

var useColor bool

var rootCmd = &cobra.Command{
	Use:   "gosvm-asm [-o outfile] filename",
	Short: "The Xonotic StackVM assembler",
	Long: `Gosvm-asm translates hand-written StackVM assembly into the config
directives the VM loads as program memory. Each instruction of the
source becomes one alias directive addressed by its slot index; labels
resolve to instruction addresses in a separate pass, so branches may
reference labels declared later in the file.

With no filename and piped standard input, the source is read from
stdin instead.`,

	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	rootCmd.Flags().StringVarP(
		&outvar, "out", "o", "a.cfg",
		"Specifies the output file path",
	)
	rootCmd.Flags().BoolVar(
		&debugvar, "debug", false,
		"Specifies whether to generate debugging information as a symbol "+
			"table. The table will use the output filename with extension "+
			"'.svmdb'",
	)
}

// The symbol table sidecar sits next to the output file, with the
// output's extension (if any) swapped for '.svmdb'.
func symTablePath(out string) string {
	base := filepath.Base(out)

	return filepath.Dir(out) + "/" +
		strings.TrimSuffix(base, filepath.Ext(base)) + ".svmdb"
}

func setPrefix(name string) {
	if useColor {
		log.SetPrefix(fmt.Sprintf("\033[1m%s:\033[0m", name))
	} else {
		log.SetPrefix(name + ":")
	}
}

// Prints the error with the offending source line underlined when the
// error carries a cursor.
func printDiagnostic(source []byte, err error) {
	tokenErr, ok := err.(parser.TokenError)

	if !ok {
		log.Println(err)
		return
	}

	cursor := tokenErr.GetPosition()

	line := source[cursor.LineByte:]

	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	underlinefmt := fmt.Sprintf(
		"%% %ds%s",
		int(cursor.Byte-cursor.LineByte)+1,
		strings.Repeat("~", int(cursor.Size)-1),
	)

	underline := fmt.Sprintf(underlinefmt, "^")

	if useColor {
		log.Printf("%s\n%s\n\033[31m%s\033[0m", err, line, underline)
	} else {
		log.Printf("%s\n%s\n%s", err, line, underline)
	}
}

func run(cmd *cobra.Command, args []string) error {
	useColor = isTerminal(os.Stderr.Fd())

	var infile string
	var source []byte

	if stat, _ := os.Stdin.Stat(); len(args) == 0 &&
		stat.Mode()&os.ModeCharDevice == 0 {
		setPrefix("<stdin>")

		var err error

		if source, err = io.ReadAll(os.Stdin); err != nil {
			log.Println(err)
			return err
		}
	} else {
		if len(args) != 1 {
			log.Println(cmd.UseLine())
			return fmt.Errorf("accepts 1 arg, received %d", len(args))
		}

		file, err := os.Open(args[0])

		if err != nil {
			log.Println(err)
			return err
		}

		defer file.Close()

		filename := filepath.Base(file.Name())
		setPrefix(filename)

		if stat, err := file.Stat(); err != nil {
			log.Println(err)
			return err
		} else if stat.IsDir() {
			err := fmt.Errorf(
				"%s is not a valid StackVM assembly file", filename,
			)
			log.Println(err)
			return err
		}

		if source, err = io.ReadAll(file); err != nil {
			log.Println(err)
			return err
		}

		infile = file.Name()
	}

	var symtable assembler.SymTable
	var symtarget *assembler.SymTable = nil

	if debugvar {
		if infile != "" {
			var err error
			if symtable.Source, err = filepath.Abs(infile); err != nil {
				log.Println(err)
				symtable.Source = ""
			}
		}
		symtable.Labels = make(map[string]int)
		symtable.Symbols = make(map[int]int64)
		symtarget = &symtable
	}

	instructions, err := assembler.AssembleSource(
		bytes.NewReader(source), symtarget,
	)

	if err != nil {
		printDiagnostic(source, err)
		return err
	}

	buffer := new(bytes.Buffer)

	if err := assembler.WriteProgram(buffer, instructions); err != nil {
		log.Println("Error rendering output")
		log.Println(err)
		return err
	}

	if err := os.WriteFile(outvar, buffer.Bytes(), 0666); err != nil {
		log.Println("Error writing output file")
		log.Println(err)
		return err
	}

	if debugvar {
		filename := symTablePath(outvar)

		file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE, 0666)

		if err != nil {
			log.Println("Error creating symbol table")
			log.Println(err)
			return err
		}

		defer file.Close()

		if err := gob.NewEncoder(file).Encode(symtable); err != nil {
			log.Println("Error writing symbol table")
			log.Println(err)
			return err
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
