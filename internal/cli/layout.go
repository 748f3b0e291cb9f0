package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/tilegame/internal/api/response"
)

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect and store premium-square layouts",
	}

	cmd.AddCommand(newLayoutListCmd())
	cmd.AddCommand(newLayoutShowCmd())
	cmd.AddCommand(newLayoutImportCmd())

	return cmd
}

func newLayoutListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newLocalApp(cmd)
			if err != nil {
				return err
			}

			names, err := app.LayoutService.List(cmd.Context())
			if err != nil {
				return err
			}
			output(cmd).Print(response.Layouts{Names: names})
			return nil
		},
	}
}

func newLayoutShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [NAME|FILE]",
		Short: "Show a layout's multipliers",
		Long:  "Show the letter and word multipliers of a stored layout or layout file. Without an argument the standard layout is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newLocalApp(cmd)
			if err != nil {
				return err
			}

			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}
			l, err := app.LayoutService.Resolve(cmd.Context(), ref)
			if err != nil {
				return err
			}
			output(cmd).Print(l)
			return nil
		},
	}
}

func newLayoutImportCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Store a layout file under a name",
		Long:  "Read an XML or YAML layout file and save it to storage. Use --storage redis to keep it between runs.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newLocalApp(cmd)
			if err != nil {
				return err
			}

			l, err := app.LayoutService.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				l.Name = name
			}
			if err := app.LayoutService.Save(cmd.Context(), l); err != nil {
				return err
			}
			output(cmd).PrintMessage("Stored layout " + l.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name to store the layout under (default: from the file)")
	return cmd
}
