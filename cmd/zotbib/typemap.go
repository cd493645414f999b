package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matsen/zotbib/internal/export"
)

var typemapPath string

func init() {
	typemapCmd.Flags().StringVar(&typemapPath, "type-map", "", "YAML file with extra CSL -> BibTeX type mappings")
	rootCmd.AddCommand(typemapCmd)
}

var typemapCmd = &cobra.Command{
	Use:   "typemap",
	Short: "Print the effective CSL -> BibTeX type mapping",
	Long: `Print the CSL item type to BibTeX entry type mapping used for header
rewriting, including any overrides from --type-map.

Examples:
  zotbib typemap
  zotbib typemap --type-map types.yml --human`,
	Args: cobra.NoArgs,
	RunE: runTypemap,
}

func runTypemap(cmd *cobra.Command, args []string) error {
	m, err := export.LoadTypeMap(typemapPath)
	if err != nil {
		return configError(err)
	}

	out := cmd.OutOrStdout()
	if !humanOutput {
		return outputJSON(out, m)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%-20s %s\n", k, m[k])
	}
	return nil
}
