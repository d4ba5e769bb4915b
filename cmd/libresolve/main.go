// Command libresolve resolves a library request against the libraries
// a project declares in its manifest and prints either the selected
// library or a diagnostic explaining why nothing could be selected.
package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"libresolve"
	"libresolve/manifest"
	"libresolve/variant"
)

var rootCmd = &cobra.Command{
	Use:   "libresolve",
	Short: "Resolve a library request against a project's declared libraries",
	Long: `Resolve a library request against a project's declared libraries.

The target project is located under the root directory by its project
path (":" is the root project, ":core:api" maps to core/api) and its
manifest is read to discover the declared libraries. With --kind set,
only libraries exposing a binary of that kind are eligible.

On success the selected library and its binaries are printed. On
failure the resolution diagnostic is printed and the exit status is
non-zero.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runResolve,
}

func init() {
	rootCmd.Flags().String("root", ".", "root project directory")
	rootCmd.Flags().String("project", ":", "target project path (e.g. :core:api)")
	rootCmd.Flags().String("library", "", "library name to resolve (default: the project's single matching library)")
	rootCmd.Flags().String("kind", "", "binary kind the request expects (e.g. jar)")
	rootCmd.Flags().String("manifest", "", "manifest file name (default "+manifest.DefaultFilename+")")
	rootCmd.Flags().Bool("verbose", false, "enable debug logging")

	for _, name := range []string{"root", "project", "library", "kind", "manifest", "verbose"} {
		if err := viper.BindPFlag(name, rootCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	viper.SetEnvPrefix("LIBRESOLVE")
	viper.AutomaticEnv()

	cobra.OnInitialize(loadConfig)
}

// loadConfig reads an optional .libresolve config file from the
// working directory. Flags and LIBRESOLVE_* env vars take precedence.
func loadConfig() {
	viper.SetConfigName(".libresolve")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn("skipping unreadable config file", "err", err)
		}
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	if viper.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	projectPath := viper.GetString("project")
	libraryName := viper.GetString("library")
	kind := viper.GetString("kind")

	loc := manifest.NewLocator(viper.GetString("root"))
	if name := viper.GetString("manifest"); name != "" {
		loc.Filename = name
	}

	log.Debug("locating project", "root", loc.Root, "path", projectPath)

	result, err := resolve(loc, projectPath, libraryName, kind)
	if err != nil {
		return err
	}

	selected := result.Selected()
	if selected == nil {
		sel := libresolve.Selector{
			ProjectPath: projectPath,
			LibraryName: libraryName,
			BinaryKind:  kind,
		}
		return errors.New(result.FailureMessage(sel))
	}

	printLibrary(selected, kind)
	return nil
}

// resolve translates locator outcomes into the three resolution
// constructors: missing project, empty project, or the general case.
func resolve(loc *manifest.Locator, projectPath, libraryName, kind string) (*libresolve.Result, error) {
	project, err := loc.Locate(projectPath)
	switch {
	case errors.Is(err, manifest.ErrProjectNotFound):
		return libresolve.ProjectNotFound(), nil
	case err != nil:
		return nil, err
	case len(project.Libraries) == 0:
		return libresolve.EmptyProject(), nil
	}

	filter := variant.Any()
	if kind != "" {
		filter = variant.Kind(kind)
	}
	return libresolve.Resolve(project.Specs(), libraryName, filter), nil
}

func printLibrary(lib libresolve.LibrarySpec, kind string) {
	fmt.Println(lib.Name())

	binaries := lib.Binaries()
	if kind != "" {
		binaries = variant.Compatible(lib, kind)
	}
	for _, bin := range binaries {
		fmt.Printf("  %s (%s)\n", bin.Name(), bin.Kind())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
