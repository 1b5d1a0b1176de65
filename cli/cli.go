package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cyber-savior/cpsav"
	"cyber-savior/cpsav/creport"
	"cyber-savior/logger"
	"cyber-savior/ui"
	"github.com/alexflint/go-arg"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Report      *ReportCmd      `arg:"subcommand:report" help:"print own and total bytes of every node"`
		Tree        *TreeCmd        `arg:"subcommand:tree" help:"print the node hierarchy with byte counts"`
		Dump        *DumpCmd        `arg:"subcommand:dump" help:"hex dump the payload of one node"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"pick a save from the current directory"`
		LogLevel    string          `arg:"--log-level,env:CYBER_SAVIOR_LOG_LEVEL" default:"NOOP" help:"NOOP, DEBUG, INFO, WARN or ERROR"`
	}
	InteractiveCmd struct{}
	ReportCmd      struct {
		Files []string `arg:"positional,required" help:"save files to report on" placeholder:"sav.dat"`
		JSON  bool     `arg:"--json" help:"print JSON instead of text"`
	}
	TreeCmd struct {
		File string `arg:"positional,required" help:"save file" placeholder:"sav.dat"`
	}
	DumpCmd struct {
		File string `arg:"positional,required" help:"save file" placeholder:"sav.dat"`
		Node int    `arg:"required" help:"index of the node to dump"`
	}
)

var ErrFailed = errors.New("one or more saves could not be loaded")

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Where did all the bytes go?\n",
			"A CLI utility to break a CDPR sav.dat node tree down into",
			"the bytes each node keeps for itself and the bytes of its children.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func readSave(path string) ([]byte, error) {
	if !CheckExistence(path) {
		return nil, errors.Errorf(`%s: "%s" does not exist`, creport.ReadFailure, path)
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		logger.Sugar.WithServiceName("cli").Warnf("reading %s: %v", path, err)
		return nil, errors.Wrap(err, creport.ReadFailure)
	}
	return bs, nil
}

// StartReporting writes one report per path. A path that fails does not
// stop the others, but the combined result is ErrFailed.
func StartReporting(w io.Writer, paths []string, asJSON bool) error {
	failed := false
	results := orderedmap.New()
	for _, path := range paths {
		bs, err := readSave(path)
		if err != nil {
			failed = true
			if asJSON {
				results.Set(path, map[string]string{"error": "read_failure", "message": err.Error()})
			} else {
				fmt.Fprintln(w, err.Error())
			}
			continue
		}

		analysis, err := cpsav.Analyze(bs)
		if err != nil {
			failed = true
			logger.Sugar.WithServiceName("cli").Infof("decoding %s: %v", path, err)
		}
		if asJSON {
			if err != nil {
				results.Set(path, creport.FailureToOrderedMap(err))
			} else {
				results.Set(path, creport.ToOrderedMap(analysis.Accounting))
			}
			continue
		}

		if len(paths) > 1 {
			fmt.Fprintf(w, "== %s ==\n", path)
		}
		if err != nil {
			fmt.Fprintln(w, creport.FormatFailure(err))
			continue
		}
		fmt.Fprint(w, creport.Format(analysis.Accounting, nil))
	}

	if asJSON {
		bs, err := results.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "StartReporting error")
		}
		fmt.Fprintln(w, string(bs))
	}
	if failed {
		return ErrFailed
	}
	return nil
}

func StartTree(w io.Writer, path string) error {
	bs, err := readSave(path)
	if err != nil {
		return err
	}
	analysis, err := cpsav.Analyze(bs)
	if err != nil {
		return errors.New(creport.FormatFailure(err))
	}
	fmt.Fprint(w, creport.FormatTree(*analysis.File, analysis.Accounting))
	return nil
}

func StartDumping(w io.Writer, path string, index int) error {
	bs, err := readSave(path)
	if err != nil {
		return err
	}
	file, err := cpsav.Decode(bs)
	if err != nil {
		return errors.New(creport.FormatFailure(err))
	}
	data, err := file.NodeData(index)
	if err != nil {
		return errors.Wrapf(err, "node %d", index)
	}
	node := file.Nodes[index]
	fmt.Fprintf(w, "%s: %d bytes at offset %d\n", node.Name, node.DataSize, node.DataOffset)
	fmt.Fprint(w, creport.HexDump(data, node.DataOffset))
	return nil
}

// Run dispatches already parsed arguments and returns the process exit code.
func Run(args Args, stdout io.Writer, stderr io.Writer) int {
	logger.New(args.LogLevel)
	defer logger.OnExit()

	err := error(nil)
	switch {
	case args.Report != nil:
		err = StartReporting(stdout, args.Report.Files, args.Report.JSON)
	case args.Tree != nil:
		err = StartTree(stdout, args.Tree.File)
	case args.Dump != nil:
		err = StartDumping(stdout, args.Dump.File, args.Dump.Node)
	default:
		err = ui.Start()
	}

	if err == nil {
		return 0
	}
	if !errors.Is(err, ErrFailed) {
		fmt.Fprintln(stderr, err.Error())
	}
	return 1
}

func Start() {
	args := Args{}
	arg.MustParse(&args)
	os.Exit(Run(args, os.Stdout, os.Stderr))
}
