package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specsmith/specsync/internal/application"
)

var (
	createPurpose      string
	createRequirements []string
	createAuthor       string
	createInteractive  bool
)

var createCmd = &cobra.Command{
	Use:   "create <feature>",
	Short: "Create a new spec document",
	Long: `Create a new spec document from a feature name, a purpose, and raw
requirement sentences. Each sentence is categorized into an EARS kind and
assigned a requirement ID; capability tags are matched from the combined
text. Use --interactive to be prompted instead of passing flags.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := loadServices()
		if err != nil {
			return err
		}

		in := application.CreateInput{
			Purpose:      createPurpose,
			Requirements: createRequirements,
			Author:       createAuthor,
		}
		if len(args) > 0 {
			in.Feature = args[0]
		}

		if createInteractive {
			if err := promptCreateInput(cmd.InOrStdin(), &in, svcs); err != nil {
				return err
			}
		}

		doc, path, err := svcs.Spec.Create(in)
		if err != nil {
			return MapError(err)
		}

		printHeader("SPEC Builder")
		fmt.Printf("Created %s: %s\n", doc.ID, doc.Feature)
		fmt.Printf("  Requirements: %d\n", len(doc.Requirements))
		fmt.Printf("  Capabilities: %s\n", strings.Join(doc.Capabilities, ", "))
		fmt.Printf("  Document: %s\n", path)
		return nil
	},
}

// promptCreateInput fills in missing fields by prompting on stdin. The
// requirement list ends with "done"; the capability preview is shown before
// a final y/n confirmation.
func promptCreateInput(in interface{ Read([]byte) (int, error) }, input *application.CreateInput, svcs *services) error {
	reader := bufio.NewReader(in)

	fmt.Println(headerStyle.Render("SPEC Builder - Interactive Mode"))

	if strings.TrimSpace(input.Feature) == "" {
		input.Feature = prompt(reader, "Feature name")
		if input.Feature == "" {
			return fmt.Errorf("feature name is required")
		}
	}
	if input.Purpose == "" {
		input.Purpose = prompt(reader, "Purpose (why this feature)")
	}

	if len(input.Requirements) == 0 {
		fmt.Println("Enter requirements (one per line). Type 'done' when finished:")
		for {
			line := prompt(reader, fmt.Sprintf("%d.", len(input.Requirements)+1))
			if strings.EqualFold(line, "done") {
				break
			}
			if line != "" {
				input.Requirements = append(input.Requirements, line)
			}
		}
		if len(input.Requirements) == 0 {
			return fmt.Errorf("at least one requirement is needed")
		}
	}

	catalog, err := svcs.Repo.LoadCatalog()
	if err != nil {
		return err
	}
	preview := previewCapabilities(catalog, input.Feature, input.Requirements)
	fmt.Printf("\nFound %d related capabilities:\n", len(preview))
	for i, line := range preview {
		fmt.Printf("  %d. %s\n", i+1, line)
	}

	if answer := prompt(reader, "Create SPEC? [y/N]"); !strings.EqualFold(answer, "y") {
		return fmt.Errorf("aborted")
	}
	return nil
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("%s ", label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	createCmd.Flags().StringVarP(&createPurpose, "purpose", "p", "", "Feature purpose")
	createCmd.Flags().StringArrayVarP(&createRequirements, "req", "r", nil, "Requirement sentence (repeatable)")
	createCmd.Flags().StringVar(&createAuthor, "author", "", "Document author")
	createCmd.Flags().BoolVarP(&createInteractive, "interactive", "i", false, "Prompt for inputs interactively")
	RootCmd.AddCommand(createCmd)
}
