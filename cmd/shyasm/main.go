package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/shyasm/asm"
	"github.com/ezrec/shyasm/config"
	shyio "github.com/ezrec/shyasm/io"
	"github.com/ezrec/shyasm/isa"
	"github.com/ezrec/shyasm/translate"
)

var f = translate.From

var errNoSource = errors.New(f("no source file given, use -c"))

// errArguments reports positional arguments, which shyasm does not take.
type errArguments []string

func (err errArguments) Error() string {
	return f("unknown arguments: %v", strings.Join(err, " "))
}

// listSymbols prints every register and command name with its address.
func listSymbols(out io.Writer) (err error) {
	for sym := range isa.Symbols() {
		_, err = fmt.Fprintln(out, sym)
		if err != nil {
			return
		}
	}
	return
}

// disassemble prints the instructions of an image, one per line.
func disassemble(filesys shyio.CreateFS, path string, out io.Writer) (err error) {
	mem, err := shyio.LoadImage(filesys, path)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	for ins := range asm.Disassemble(mem) {
		_, err = fmt.Fprintln(out, ins.String())
		if err != nil {
			return
		}
	}
	return
}

func run(args []string, out io.Writer) (err error) {
	var compile string
	var image string
	var confPath string
	var list bool
	var defines []string

	conf := config.Default()

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(out)
	flags.StringVar(&compile, "c", "", ".asm file to assemble")
	flags.StringVar(&conf.Output, "o", conf.Output, ".sfs image output")
	flags.StringVar(&conf.Symbols, "m", conf.Symbols, ".yaml symbol map output")
	flags.BoolVar(&conf.Trim, "t", conf.Trim, "Trim trailing zero words from the image")
	flags.Func("D", "Predefine NAME=VALUE (repeatable)", func(define string) error {
		defines = append(defines, define)
		return nil
	})
	flags.StringVar(&confPath, "f", "", ".toml configuration file")
	flags.StringVar(&image, "d", "", ".sfs image to disassemble")
	flags.BoolVar(&list, "l", false, "List register and command names")
	flags.StringVar(&conf.Locale, "L", conf.Locale, "Message locale, such as en-US")
	flags.BoolVar(&conf.Verbose, "v", conf.Verbose, "Verbose mode")

	err = flags.Parse(args[1:])
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		err = errArguments(flags.Args())
		return
	}

	filesys := shyio.DirFS("")

	// Flags given on the command line override the configuration file.
	if len(confPath) != 0 {
		var loaded *config.Config
		loaded, err = config.Load(filesys, confPath)
		if err != nil {
			err = fmt.Errorf("%v: %w", confPath, err)
			return
		}
		flags.Visit(func(fl *flag.Flag) {
			switch fl.Name {
			case "o":
				loaded.Output = conf.Output
			case "m":
				loaded.Symbols = conf.Symbols
			case "t":
				loaded.Trim = conf.Trim
			case "v":
				loaded.Verbose = conf.Verbose
			case "L":
				loaded.Locale = conf.Locale
			}
		})
		conf = loaded
	}

	if len(conf.Locale) != 0 {
		err = translate.SetLocale(conf.Locale)
		if err != nil {
			err = fmt.Errorf("-L %v: %w", conf.Locale, err)
			return
		}
	}

	for _, define := range defines {
		err = conf.AddDefine(define)
		if err != nil {
			err = fmt.Errorf("-D %v: %w", define, err)
			return
		}
	}

	if list {
		err = listSymbols(out)
		return
	}

	if len(image) != 0 {
		err = disassemble(filesys, image, out)
		return
	}

	if len(compile) == 0 {
		err = errNoSource
		return
	}

	text, err := shyio.ReadSource(filesys, compile)
	if err != nil {
		return
	}

	assembler := &asm.Assembler{Verbose: conf.Verbose}
	for _, name := range conf.Defines() {
		assembler.Predefine(name, conf.Define[name])
	}

	mem := isa.NewMemory()
	prog, err := assembler.AssembleInto(text, mem)
	if err != nil {
		err = fmt.Errorf("%v: %w", compile, err)
		return
	}

	if conf.Verbose {
		log.Printf("%v: %d instructions, %d labels", compile, len(prog.Instructions), len(prog.Label))
	}

	err = shyio.SaveImage(filesys, conf.Output, mem, conf.Trim)
	if err != nil {
		return
	}

	if len(conf.Symbols) != 0 {
		err = shyio.SaveSymbols(filesys, conf.Symbols, prog)
		if err != nil {
			return
		}
	}

	return
}

func main() {
	err := run(os.Args, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
