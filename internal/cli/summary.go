package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/diagram/catalog"
	"github.com/pentagongym/gymdiag/pkg/errors"
	"github.com/pentagongym/gymdiag/pkg/pipeline"
)

// Summary groups, in display order.
const (
	groupERD          = "ERD"
	groupClass        = "UML class"
	groupSequence     = "Sequence"
	groupArchitecture = "Architecture"
	groupOther        = "Other"
)

var groupOrder = []string{groupERD, groupClass, groupSequence, groupArchitecture, groupOther}

// summaryFile is one generated file found in the output directory.
type summaryFile struct {
	Name   string // file name
	Format string
	Size   int64
}

// summaryGroup holds the files of one diagram type.
type summaryGroup struct {
	Name  string
	Files []summaryFile
}

// Size returns the combined size of the group's files.
func (g summaryGroup) Size() int64 {
	var n int64
	for _, f := range g.Files {
		n += f.Size
	}
	return n
}

// summaryCommand creates the summary command listing generated files.
func (c *CLI) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [dir]",
		Short: "Summarise the generated files by diagram type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := pipeline.DefaultOutputDir
			if len(args) == 1 {
				dir = args[0]
			}
			groups, err := summarize(dir)
			if err != nil {
				return err
			}
			printSummary(dir, groups)
			return nil
		},
	}
}

// summarize reads dir and groups every recognised output file by diagram
// type. Empty groups are omitted.
func summarize(dir string) ([]summaryGroup, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "output directory %s", dir)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	byGroup := make(map[string][]summaryFile)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		base, format, ok := splitOutputName(e.Name())
		if !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		g := groupOf(base)
		byGroup[g] = append(byGroup[g], summaryFile{Name: e.Name(), Format: format, Size: info.Size()})
	}

	var groups []summaryGroup
	for _, name := range groupOrder {
		files := byGroup[name]
		if len(files) == 0 {
			continue
		}
		slices.SortFunc(files, func(a, b summaryFile) int { return strings.Compare(a.Name, b.Name) })
		groups = append(groups, summaryGroup{Name: name, Files: files})
	}
	return groups, nil
}

// splitOutputName splits a file name into the diagram name and its
// pipeline format. Files of other types are rejected.
func splitOutputName(file string) (base, format string, ok bool) {
	if name, found := strings.CutSuffix(file, ".nodelink.svg"); found {
		return name, pipeline.FormatNodelink, true
	}
	ext := strings.TrimPrefix(filepath.Ext(file), ".")
	if !pipeline.ValidFormats[ext] {
		return "", "", false
	}
	return strings.TrimSuffix(file, "."+ext), ext, true
}

// groupOf classifies a diagram name. Catalog diagrams use their kind;
// other names are matched by keyword.
func groupOf(name string) string {
	if d, err := catalog.Lookup(name); err == nil {
		return groupOfKind(d.Kind)
	}
	switch lower := strings.ToLower(name); {
	case strings.Contains(lower, "erd"):
		return groupERD
	case strings.Contains(lower, "class"):
		return groupClass
	case strings.Contains(lower, "sequence"):
		return groupSequence
	case strings.Contains(lower, "architecture"):
		return groupArchitecture
	}
	return groupOther
}

func groupOfKind(k diagram.Kind) string {
	switch k {
	case diagram.KindERD:
		return groupERD
	case diagram.KindClass:
		return groupClass
	case diagram.KindSequence:
		return groupSequence
	case diagram.KindArchitecture, diagram.KindLayered:
		return groupArchitecture
	}
	return groupOther
}

// summaryTable tabulates the groups, one row per file.
func summaryTable(groups []summaryGroup) *tableRows {
	t := &tableRows{headers: []string{"Type", "File", "Format", "Size"}}
	for _, g := range groups {
		for i, f := range g.Files {
			label := ""
			if i == 0 {
				label = g.Name
			}
			t.rows = append(t.rows, []string{label, f.Name, f.Format, formatSize(f.Size)})
		}
	}
	return t
}

func printSummary(dir string, groups []summaryGroup) {
	if len(groups) == 0 {
		printWarning("No diagrams found in %s", dir)
		printNextStep("Generate them", appName)
		return
	}

	fmt.Fprintln(out, StyleTitle.Render("Generated diagrams"))
	printNewline()
	printTable(summaryTable(groups))

	var files int
	var size int64
	for _, g := range groups {
		files += len(g.Files)
		size += g.Size()
	}
	printKeyValue("Directory", dir)
	printKeyValue("Files", fmt.Sprintf("%d", files))
	printKeyValue("Total size", formatSize(size))
}
