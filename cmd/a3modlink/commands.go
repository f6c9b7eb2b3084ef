package a3modlink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/Pixelated-Grunt/a3modlink/pkg/commands/link"
	"github.com/Pixelated-Grunt/a3modlink/pkg/commands/list"
	"github.com/Pixelated-Grunt/a3modlink/pkg/commands/prune"
	"github.com/Pixelated-Grunt/a3modlink/pkg/commands/unlink"
	"github.com/Pixelated-Grunt/a3modlink/pkg/config"
	"github.com/Pixelated-Grunt/a3modlink/pkg/style"
)

// loadConfig builds the effective configuration from the config file
// and the persistent directory-override flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Root().PersistentFlags()

	cfgFile, _ := flags.GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	if modsDir, _ := flags.GetString("mods-dir"); modsDir != "" {
		cfg.ModsDir = modsDir
	}
	if linksDir, _ := flags.GetString("links-dir"); linksDir != "" {
		cfg.LinksDir = linksDir
	}

	return cfg, nil
}

func newListCmd() *cobra.Command {
	var brokenOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			result, err := list.ListLinks(list.ListLinksOptions{
				Config:     cfg,
				BrokenOnly: brokenOnly,
			})
			if err != nil {
				return fmt.Errorf(MsgErrListLinks, err)
			}

			if len(result.Links) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoLinks)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.RenderLinkList(result.Links))
			return nil
		},
	}

	cmd.Flags().BoolVar(&brokenOnly, "broken-only", false, MsgFlagBroken)

	return cmd
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add [id...]",
		Short:   MsgAddShort,
		Example: MsgAddExample,
		GroupID: "core",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			log.Info().
				Str("mods_dir", cfg.ModsDir).
				Str("links_dir", cfg.LinksDir).
				Strs("ids", args).
				Msg("Linking mods")

			result, err := link.LinkMods(link.LinkModsOptions{
				Config: cfg,
				IDs:    args,
			})
			if err != nil {
				return fmt.Errorf(MsgErrLinkMods, err)
			}

			if result.AllLinked {
				fmt.Fprintln(cmd.OutOrStdout(), MsgAllLinked)
				return nil
			}

			// Per-item failures are reported here but never change the
			// exit status
			fmt.Fprintln(cmd.OutOrStdout(), style.RenderResults(result.Results))
			return nil
		},
	}
}

func newUnlinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unlink name...",
		Short:   MsgUnlinkShort,
		Example: MsgUnlinkExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			result, err := unlink.UnlinkMods(unlink.UnlinkModsOptions{
				Config: cfg,
				Names:  args,
			})
			if err != nil {
				return fmt.Errorf(MsgErrUnlinkMods, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.RenderResults(result.Results))
			return nil
		},
	}
}

func newPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "prune-broken",
		Short:   MsgPruneShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			result, err := prune.PruneLinks(prune.PruneLinksOptions{Config: cfg})
			if err != nil {
				return fmt.Errorf(MsgErrPruneLinks, err)
			}

			out := cmd.OutOrStdout()
			if len(result.Results) == 0 {
				fmt.Fprintln(out, MsgNonePruned)
				return nil
			}

			fmt.Fprintln(out, style.RenderResults(result.Results))
			fmt.Fprintf(out, "Removed %d broken link(s).\n", result.Pruned)
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), string(out))
				return nil
			}

			path := config.DefaultPath()
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}
			if err := os.WriteFile(path, out, 0644); err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "A3MODLINK",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, "/tmp")
		},
	}
}
