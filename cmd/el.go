package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"elgen.dev/pkg/elgen/internal/adapter"
	"elgen.dev/pkg/elgen/internal/controller"
	"elgen.dev/pkg/elgen/internal/domain"
	m "elgen.dev/pkg/elgen/internal/model"
)

const (
	docsFlagName     = "docs"
	pathFlagName     = "path"
	importFlagName   = "import"
	testFlagName     = "test"
	noPromptFlagName = "no-prompt"
	forceFlagName    = "force"
	dryRunFlagName   = "dry-run"
)

const elLongDescription = `Scaffold the custom element <element-name> in the elements directory.

The element name must contain a dash (e.g. x-foo). Every extra argument is a
dependency imported by the generated element, resolved in the dependency
cache (e.g. paper-button or iron-icons/iron-icons).

Unless answered with --import and --test (or --no-prompt), elgen asks whether
to import the element in elements.html and, when the project has a test
harness, which test stub to create.`

var (
	elDocsFlag     bool
	elPathFlag     string
	elAppFlag      string
	elElementsFlag string
	elBowerFlag    string
	elTemplateFlag string
	elImportFlag   bool
	elTestFlag     string
	elNoPromptFlag bool
	elForceFlag    bool
	elDedupeFlag   bool
	elDryRunFlag   bool
)

// workflowOptions carries what is needed to build a Workflow for one run.
type workflowOptions struct {
	projectRoot  m.Path
	templatesDir string
	prompt       bool
}

// newWorkflow builds the workflow of the el command. Tests replace it.
var newWorkflow = func(cmd *cobra.Command, opts workflowOptions) (domain.Workflow, error) {
	renderer, err := adapter.NewTemplateRenderer(opts.templatesDir)
	if err != nil {
		return nil, err
	}

	fsAdapter := adapter.NewLocalProjectFSAdapter()
	orchestrator := domain.NewOrchestrator(opts.projectRoot, fsAdapter, renderer, adapter.NewHTMLBeautifier())

	var prompter controller.Prompter = controller.NewStaticPrompter()
	if opts.prompt {
		prompter = controller.NewHuhPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), os.Getenv("ACCESSIBLE") != "")
	}

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(opts.projectRoot, fsAdapter, prompter, ui, orchestrator), nil
}

// elCmd represents the el command.
var elCmd = newElCmd()

func newElCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "el <element-name> [dependency...]",
		Aliases: []string{"element"},
		Short:   "Scaffold a custom element",
		Long:    elLongDescription,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, answered, err := buildScaffoldConfig(cmd, args)
			if err != nil {
				return err
			}

			root, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			wf, err := newWorkflow(cmd, workflowOptions{
				projectRoot:  m.Path(root),
				templatesDir: viper.GetString(templatesConfigKey),
				prompt:       !elNoPromptFlag && controller.IsTTY(os.Stdin),
			})
			if err != nil {
				return err
			}

			return wf.Scaffold(cmd.Context(), domain.ScaffoldArgs{Config: cfg, Answered: answered})
		},
	}

	configureElFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(elCmd)
}

func configureElFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&elDocsFlag, docsFlagName, "d", false, "also create a docs page and a demo")
	cmd.Flags().StringVarP(&elPathFlag, pathFlagName, "p", "", "directory under the elements root (default: the element name)")

	cmd.Flags().StringVar(&elAppFlag, appFlagName, defaultAppRoot, "application root")
	bindFlagToConfig(cmd.Flags().Lookup(appFlagName), appConfigKey)

	cmd.Flags().StringVar(&elElementsFlag, elementsFlagName, defaultElementsRoot, "elements root, under the application root")
	bindFlagToConfig(cmd.Flags().Lookup(elementsFlagName), elementsConfigKey)

	cmd.Flags().StringVar(&elBowerFlag, bowerFlagName, defaultDepCacheRoot, "dependency cache, under the application root")
	bindFlagToConfig(cmd.Flags().Lookup(bowerFlagName), bowerConfigKey)

	cmd.Flags().StringVar(&elTemplateFlag, templatesFlagName, defaultTemplatesDir, "directory of templates overriding the built-in ones")
	bindFlagToConfig(cmd.Flags().Lookup(templatesFlagName), templatesConfigKey)

	cmd.Flags().BoolVar(&elDedupeFlag, dedupeFlagName, defaultDedupe, "skip imports and suites that are already registered")
	bindFlagToConfig(cmd.Flags().Lookup(dedupeFlagName), dedupeConfigKey)

	cmd.Flags().BoolVarP(&elImportFlag, importFlagName, "i", false, "import the element in elements.html")
	cmd.Flags().StringVarP(&elTestFlag, testFlagName, "t", "", "test stub to create: TDD, BDD or None")
	cmd.Flags().BoolVar(&elNoPromptFlag, noPromptFlagName, false, "never prompt, use the default answers")
	cmd.Flags().BoolVarP(&elForceFlag, forceFlagName, "f", false, "overwrite existing element files")
	cmd.Flags().BoolVarP(&elDryRunFlag, dryRunFlagName, "n", false, "show what would be written without writing")
}

// buildScaffoldConfig maps the arguments and flags of the el command to a
// scaffold configuration and reports which questions the flags answered.
func buildScaffoldConfig(cmd *cobra.Command, args []string) (m.ScaffoldConfig, controller.Answered, error) {
	testKind, err := m.ParseTestKind(elTestFlag)
	if err != nil {
		return m.ScaffoldConfig{}, controller.Answered{}, fmt.Errorf("invalid --%s: %w", testFlagName, err)
	}

	cfg := m.ScaffoldConfig{
		ElementName:          args[0],
		Dependencies:         args[1:],
		AppRootOverride:      viper.GetString(appConfigKey),
		ElementsRootOverride: viper.GetString(elementsConfigKey),
		DepCacheRootOverride: viper.GetString(bowerConfigKey),
		NestedPathOverride:   elPathFlag,
		IncludeDocs:          elDocsFlag,
		IncludeImport:        elImportFlag,
		TestKind:             testKind,
		Force:                elForceFlag,
		Dedupe:               viper.GetBool(dedupeConfigKey),
		DryRun:               elDryRunFlag,
	}

	answered := controller.Answered{
		Import:   cmd.Flags().Changed(importFlagName),
		TestKind: cmd.Flags().Changed(testFlagName),
	}

	return cfg, answered, nil
}
