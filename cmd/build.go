/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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

	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gomesh/InputParameters"
	"github.com/notargets/gomesh/mesh"
	"github.com/notargets/gomesh/mesh/readers"
	"github.com/notargets/gomesh/samples"
	"github.com/notargets/gomesh/utils"
)

// BuildCmd represents the build command
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build mesh topology from a grid file or a sample mesh",
	Long: `
Reads a grid file (Gmsh 2.2 .msh or SU2 .su2) or constructs a sample mesh,
derives interior faces, boundary faces and ghost cells, and reports statistics.

gomesh build -s 2dmix --check
gomesh build -F grid.su2 -w 8`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			bp *InputParameters.BuildParameters
		)
		if bp, err = processInput(cmd); err != nil {
			return
		}
		if viper.GetBool("profile") {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		bp.Print()
		var m *mesh.Mesh
		if m, err = RunBuild(bp); err != nil {
			return
		}
		m.PrintStatistics()
		return
	},
}

func init() {
	rootCmd.AddCommand(BuildCmd)
	BuildCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in Gmsh 2.2 (.msh) or SU2 (.su2) format")
	BuildCmd.Flags().StringP("sample", "s", "", "Sample mesh to build instead of a grid file")
	BuildCmd.Flags().StringP("inputParametersFile", "I", "", "YAML or TOML build parameters file")
	BuildCmd.Flags().Bool("check", false, "verify that face normals point out of their owner cells")
	BuildCmd.Flags().Bool("ghosts", false, "place ghost cells by mirroring owner centroids")
	BuildCmd.Flags().StringSlice("cellTypes", nil, "accepted cell types, e.g. tet,hex (default all)")
}

// processInput merges the parameter file with the command line; flags win
func processInput(cmd *cobra.Command) (bp *InputParameters.BuildParameters, err error) {
	var (
		ipFile string
	)
	if ipFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
		return
	}
	if ipFile != "" {
		if bp, err = InputParameters.ReadFile(ipFile); err != nil {
			return
		}
	} else {
		bp = &InputParameters.BuildParameters{}
	}
	if cmd.Flags().Changed("gridFile") {
		bp.GridFile, _ = cmd.Flags().GetString("gridFile")
		bp.Sample = ""
	}
	if cmd.Flags().Changed("sample") {
		bp.Sample, _ = cmd.Flags().GetString("sample")
		bp.GridFile = ""
	}
	if cmd.Flags().Changed("check") {
		bp.CheckOrientation, _ = cmd.Flags().GetBool("check")
	}
	if cmd.Flags().Changed("ghosts") {
		bp.PlaceGhosts, _ = cmd.Flags().GetBool("ghosts")
	}
	if cmd.Flags().Changed("cellTypes") {
		bp.CellTypes, _ = cmd.Flags().GetStringSlice("cellTypes")
	}
	if bp.Workers == 0 || cmd.Flags().Changed("workers") {
		bp.Workers = viper.GetInt("workers")
	}
	if bp.LogLevel != "" && !cmd.Flags().Changed("logLevel") {
		utils.InitLogger(bp.LogLevel)
	}
	if bp.GridFile == "" && bp.Sample == "" {
		err = fmt.Errorf("must supply a grid file (-F, --gridFile) or a sample (-s, --sample), samples are %v",
			samples.Names())
		return
	}
	err = bp.Validate()
	return
}

// RunBuild loads the input named by bp and builds the mesh
func RunBuild(bp *InputParameters.BuildParameters) (m *mesh.Mesh, err error) {
	var (
		in      *mesh.Input
		allowed []utils.CellType
	)
	if allowed, err = bp.AllowedCellTypes(); err != nil {
		return
	}
	switch {
	case bp.Sample != "":
		in, err = samples.ByName(bp.Sample)
	default:
		in, err = readers.ReadMeshFile(bp.GridFile)
	}
	if err != nil {
		return
	}
	if err = in.CheckCellTypes(allowed); err != nil {
		return
	}
	log.Info().Str("title", in.Title).Int("ndim", in.NDim).Int("nodes", in.NumNodes()).
		Int("cells", in.NumCells()).Msg("loaded mesh input")
	if m, err = in.Build(mesh.Options{Workers: bp.Workers}); err != nil {
		return
	}
	if bp.CheckOrientation {
		if err = m.CheckOrientation(); err != nil {
			return nil, err
		}
		log.Info().Msg("all face normals point outward")
	}
	if bp.PlaceGhosts {
		ghosts := m.GhostCells()
		for i, c := range m.GhostCentroids(mesh.MirrorPlacer{}) {
			g := ghosts[i]
			log.Debug().Int("ghost", g.Index).Int("cell", g.Cell).
				Float64("x", c.X).Float64("y", c.Y).Float64("z", c.Z).Msg("ghost placement")
		}
	}
	return
}
