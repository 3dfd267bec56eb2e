package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"copticsocial/internal/api"
	"copticsocial/internal/domain"
	"copticsocial/internal/logging"
)

func newGroupsCmd(opts *options) *cobra.Command {
	var (
		mine      bool
		groupType string
		privacy   string
		limit     int
	)

	cmd := &cobra.Command{
		Use:     "groups [query]",
		Aliases: []string{"ls"},
		Short:   "List groups without starting the interface",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := api.ListParams{
				GroupType: domain.GroupType(groupType),
				Privacy:   domain.Privacy(privacy),
				MyGroups:  mine,
				Limit:     limit,
			}
			if len(args) == 1 {
				params.Search = args[0]
			}
			if params.GroupType != "" && !slices.Contains(domain.GroupTypes, params.GroupType) {
				return fmt.Errorf("unknown group type %q", groupType)
			}
			if params.Privacy != "" && !slices.Contains(domain.PrivacyLevels, params.Privacy) {
				return fmt.Errorf("unknown privacy level %q", privacy)
			}

			logger, err := logging.NewConsoleLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			_, _, cfg, err := loadConfig(opts, nil)
			if err != nil {
				return err
			}
			client, err := newClient(cfg, logger)
			if err != nil {
				return err
			}

			list, err := client.ListGroups(cmd.Context(), params)
			if err != nil {
				logger.Debug("list groups", zap.Error(err))
				return fmt.Errorf("listing groups: %s", api.UserMessage(err))
			}
			printGroups(cmd.OutOrStdout(), list.Results)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&mine, "mine", false, "only groups you belong to")
	flags.StringVar(&groupType, "type", "", "filter by group type (ministry, study, prayer, ...)")
	flags.StringVar(&privacy, "privacy", "", "filter by privacy (public, parish_only, private, invite_only)")
	flags.IntVar(&limit, "limit", 0, "maximum number of groups to list")
	return cmd
}

func printGroups(w io.Writer, groups []domain.Group) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No groups found")
		return
	}

	data := make([][]string, 0, len(groups))
	for _, g := range groups {
		members := strconv.Itoa(g.MemberCount)
		if g.MaxMembers != nil {
			members += "/" + strconv.Itoa(*g.MaxMembers)
		}
		data = append(data, []string{g.Name, g.GroupType.Label(), g.Privacy.Label(), g.Parish.Name, members, membershipStatus(g)})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"NAME", "TYPE", "PRIVACY", "PARISH", "MEMBERS", "STATUS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

func membershipStatus(g domain.Group) string {
	switch {
	case g.IsMember():
		return string(g.UserMembership.Role)
	case g.IsFull():
		return "full"
	case !g.Privacy.Joinable():
		return "invite only"
	case g.RequireApproval:
		return "approval"
	default:
		return "open"
	}
}
