package main

import (
	"github.com/spf13/cobra"

	"github.com/udyamlabs/finhealth-cli/internal/model"
	"github.com/udyamlabs/finhealth-cli/internal/store"
)

var (
	sessionsIndustry string
	sessionsLimit    int
	sessionsFormat   string
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage stored assessment sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(cmd.Context()); err != nil {
			return err
		}

		sessions, err := st.ListSessions(cmd.Context(), store.SessionFilter{
			Industry: model.Industry(sessionsIndustry),
			Limit:    sessionsLimit,
		})
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), sessions, sessionsFormat)
	},
}

var sessionsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one session with its assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := st.GetSession(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), sess, sessionsFormat)
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		return st.DeleteSession(cmd.Context(), args[0])
	},
}

func init() {
	sessionsCmd.PersistentFlags().StringVarP(&sessionsFormat, "format", "f", "json", "output format: json or yaml")
	sessionsListCmd.Flags().StringVar(&sessionsIndustry, "industry", "", "filter by industry")
	sessionsListCmd.Flags().IntVar(&sessionsLimit, "limit", 0, "maximum sessions to list")
	sessionsCmd.AddCommand(sessionsListCmd, sessionsGetCmd, sessionsDeleteCmd)
	rootCmd.AddCommand(sessionsCmd)
}
