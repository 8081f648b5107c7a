/*
Copyright © 2021 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/nastomesh/mesh"
	"github.com/notargets/nastomesh/nastran"
)

type ModelConvert struct {
	DeckFile     string
	OutputFile   string
	Format       nastran.Format
	DefaultNames bool
	Scale        float64
	Verbose      bool
	Profile      bool
}

// Parameters obtained from the optional YAML input file; command line flags
// take precedence over values set here
type ConversionParameters struct {
	Title        string  `yaml:"Title"`
	Format       string  `yaml:"Format"`
	Scale        float64 `yaml:"Scale"`
	DefaultNames bool    `yaml:"DefaultNames"`
	Output       string  `yaml:"Output"`
}

func (cp *ConversionParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

func (cp *ConversionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("[%s]\t\t\t= Format\n", cp.Format)
	fmt.Printf("%8.5f\t\t= Scale\n", cp.Scale)
	fmt.Printf("[%v]\t\t\t= DefaultNames\n", cp.DefaultNames)
	fmt.Printf("[%s]\t\t= Output\n", cp.Output)
}

// ConvertCmd represents the convert command
var ConvertCmd = &cobra.Command{
	Use:   "convert [flags] deck.dat",
	Short: "Convert a NASTRAN bulk data deck to an SU2 mesh",
	Long: `
Reads a NASTRAN bulk data deck in small, large or free field format and
assembles an indexed volumetric mesh: points, cells, named boundary patches
from PSHELL groups and named cell zones from PSOLID groups,

nastomesh convert -f small grid.dat`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mc := &ModelConvert{DeckFile: args[0], Scale: 1.0}
		formatName, _ := cmd.Flags().GetString("format")
		mc.DefaultNames, _ = cmd.Flags().GetBool("defaultNames")
		mc.OutputFile, _ = cmd.Flags().GetString("output")
		mc.Verbose, _ = cmd.Flags().GetBool("verbose")
		mc.Profile, _ = cmd.Flags().GetBool("profile")
		icFile, _ := cmd.Flags().GetString("inputFile")
		processInput(mc, formatName, icFile, cmd.Flags().Changed)
		RunConvert(mc)
	},
}

func processInput(mc *ModelConvert, formatName, icFile string, changed func(string) bool) {
	var (
		err error
	)
	if len(icFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(icFile); err != nil {
			fmt.Printf("error: unable to read input file %s\n", icFile)
			exampleFile := `
########################################
Title: "Inlet Duct"
Format: small # Can be "large" or "free"
Scale: 0.001 # Deck in millimeters
DefaultNames: false
Output: duct.su2
########################################
`
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		cp := &ConversionParameters{Scale: 1.0}
		if err = cp.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if mc.Verbose {
			cp.Print()
		}
		if len(cp.Format) != 0 && !changed("format") {
			formatName = cp.Format
		}
		if cp.DefaultNames && !changed("defaultNames") {
			mc.DefaultNames = true
		}
		if len(cp.Output) != 0 && !changed("output") {
			mc.OutputFile = cp.Output
		}
		mc.Scale = cp.Scale
	}
	if mc.Format, err = nastran.NewFormat(formatName); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if len(mc.OutputFile) == 0 {
		base := mc.DeckFile
		if ind := strings.LastIndex(base, "."); ind > 0 {
			base = base[:ind]
		}
		mc.OutputFile = base + ".su2"
	}
}

func init() {
	rootCmd.AddCommand(ConvertCmd)
	ConvertCmd.Flags().StringP("format", "f", "small", "input field format: small, large or free")
	ConvertCmd.Flags().Bool("defaultNames", false, "ignore comment derived names, always generate patch_N / cellZone_N")
	ConvertCmd.Flags().StringP("output", "o", "", "output SU2 file (default is the deck name with .su2)")
	ConvertCmd.Flags().StringP("inputFile", "I", "", "YAML file for conversion parameters like:\n\t- Format\n\t- Scale (unit conversion)")
	ConvertCmd.Flags().BoolP("verbose", "v", false, "print progress and mesh statistics")
	ConvertCmd.Flags().Bool("profile", false, "write a CPU profile for the conversion")
}

func RunConvert(mc *ModelConvert) {
	if mc.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	m, err := nastran.ReadBulkData(mc.DeckFile, nastran.Options{
		Format:       mc.Format,
		DefaultNames: mc.DefaultNames,
		Verbose:      mc.Verbose,
	})
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if mc.Scale != 1.0 && mc.Scale != 0 {
		m.Scale(mc.Scale)
	}
	m.BuildConnectivity()
	m.PrintStatistics()
	if err = mesh.WriteSU2(m, mc.OutputFile); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Wrote mesh to %s\n", mc.OutputFile)
}
