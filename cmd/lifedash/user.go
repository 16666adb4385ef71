package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/Veraticus/lifedash/internal/common"
	"github.com/spf13/cobra"
)

func userCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user [name...]",
		Short: "Show or change the name the dashboard greets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				_, err := fmt.Fprintln(out, a.store.UserName())
				return err
			}

			if err := a.store.SetUserName(cmd.Context(), strings.Join(args, " ")); err != nil {
				return common.NewUserError("could not change the user name", err)
			}
			_, err = fmt.Fprintln(out, cli.FormatSuccess("Hello, "+a.store.UserName()+"!"))
			return err
		},
	}
}
