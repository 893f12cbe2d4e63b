// Command galign is the CLI driver over the splitgraph/graphviz/persist
// packages: build a split graph from FASTA + an edge list, export
// it to Graphviz DOT, or snapshot it to disk and reload it.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/jwaldrip/odin/cli"

	"galign/graphviz"
	"galign/persist"
	"galign/splitgraph"
)

var app = cli.New("1.0.0", "Graph-genome split-node aligner", func(c cli.Command) {})

func init() {
	app.DefineIntFlag("wordsize", splitgraph.SplitNodeSize, "DP word size (must be <= split width)")

	build := app.DefineSubCommand("build", "build a split graph from FASTA nodes and an edge list, and save its snapshot", buildCmd)
	{
		build.DefineStringFlag("fasta", "", "FASTA file; each record becomes one original vertex")
		build.DefineStringFlag("edges", "", "tab-separated fromID\\ttoID\\ttoOffset edge list (optional)")
		build.DefineStringFlag("out", "graph.gln", "output snapshot path")
		build.DefineBoolFlag("components", false, "also compute SCC component order")
	}

	dot := app.DefineSubCommand("dot", "render a saved snapshot to Graphviz DOT", dotCmd)
	{
		dot.DefineStringFlag("in", "graph.gln", "input snapshot path")
		dot.DefineStringFlag("out", "", "output DOT path (stdout if empty)")
		dot.DefineBoolFlag("components", false, "color/label by component instead of by ambiguity and id/offset/strand")
	}
}

func main() {
	app.Start()
}

// readFASTANodes ingests a FASTA file into the builder, one original
// vertex per record (in file order, with sequential integer ids), each
// spanning its whole length as a single breakpoint region.
func readFASTANodes(path string, b *splitgraph.Builder) error {
	infile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("[readFASTANodes] open %s: %w", path, err)
	}
	defer infile.Close()

	reader := fasta.NewReader(infile, linear.NewSeq("", nil, alphabet.DNA))
	id := 0
	for {
		s, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("[readFASTANodes] read %s: %w", path, err)
		}
		l := s.(*linear.Seq)
		seq := make([]byte, len(l.Seq))
		for i, r := range l.Seq {
			seq[i] = byte(r)
		}
		b.AddNode(id, string(seq), l.Annotation.ID, false, []int{0, len(seq)})
		id++
	}
	return nil
}

// readEdges ingests tab-separated fromID\ttoID\ttoOffset lines into the
// builder.
func readEdges(path string, b *splitgraph.Builder) error {
	fp, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("[readEdges] open %s: %w", path, err)
	}
	defer fp.Close()

	scanner := bufio.NewScanner(fp)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return fmt.Errorf("[readEdges] malformed line %q in %s", line, path)
		}
		from, err1 := strconv.Atoi(fields[0])
		to, err2 := strconv.Atoi(fields[1])
		offset, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return fmt.Errorf("[readEdges] malformed line %q in %s", line, path)
		}
		b.AddEdge(from, to, offset)
	}
	return scanner.Err()
}

func buildCmd(c cli.Command) {
	fastaPath := c.Flag("fasta").String()
	edgesPath := c.Flag("edges").String()
	outPath := c.Flag("out").String()
	components := c.Flag("components").Get().(bool)
	wordSize := c.Parent().Flag("wordsize").Get().(int)

	if fastaPath == "" {
		log.Fatalf("[build] -fasta is required\n")
	}

	b := splitgraph.NewBuilder()
	if err := readFASTANodes(fastaPath, b); err != nil {
		log.Fatalf("[build] %v\n", err)
	}
	if edgesPath != "" {
		if err := readEdges(edgesPath, b); err != nil {
			log.Fatalf("[build] %v\n", err)
		}
	}

	g := b.Finalize(wordSize, components)
	if err := persist.Save(outPath, g); err != nil {
		log.Fatalf("[build] %v\n", err)
	}
	fmt.Printf("[build] saved %d split vertices to %s\n", g.NodeSize(), outPath)
}

func dotCmd(c cli.Command) {
	inPath := c.Flag("in").String()
	outPath := c.Flag("out").String()
	components := c.Flag("components").Get().(bool)

	g, err := persist.Load(inPath)
	if err != nil {
		log.Fatalf("[dot] %v\n", err)
	}

	w := os.Stdout
	if outPath != "" {
		fp, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("[dot] create %s: %v\n", outPath, err)
		}
		defer fp.Close()
		w = fp
	}

	var renderErr error
	if components {
		renderErr = graphviz.WriteComponentDOT(w, g)
	} else {
		renderErr = graphviz.WriteDOT(w, g)
	}
	if renderErr != nil {
		log.Fatalf("[dot] %v\n", renderErr)
	}
}
