package a3modlink

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Name your Arma 3 workshop mods with symbolic links"
	MsgRootLong  = `a3modlink looks up downloaded Arma 3 workshop mods on Steam and
creates or removes human-readable symbolic links for them. Workshop
content lives in digit-named directories; a3modlink gives each one a
link named after its workshop title.`

	MsgListShort = "List existing links and their targets"
	MsgListLong  = "List displays every symbolic link in the links directory with the mod directory it points to, sorted by name."

	MsgAddShort   = "Create links for the given mod ids, or for every unlinked mod"
	MsgAddExample = `  a3modlink add              # link everything new under the mods directory
  a3modlink add 2183975396   # link one specific mod`

	MsgUnlinkShort   = "Remove links by name"
	MsgUnlinkExample = `  a3modlink unlink cba_a3 ace`

	MsgPruneShort = "Remove links whose mod directory is gone"

	MsgGenConfigShort   = "Print the effective configuration as TOML"
	MsgGenConfigExample = `  a3modlink gen-config       # print to stdout
  a3modlink gen-config -w    # write the default config file location`

	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoLinks    = "No links found."
	MsgAllLinked  = "All mods have already been linked."
	MsgNonePruned = "No broken links to remove."

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrListLinks  = "failed to list links: %w"
	MsgErrLinkMods   = "failed to link mods: %w"
	MsgErrUnlinkMods = "failed to unlink mods: %w"
	MsgErrPruneLinks = "failed to prune links: %w"
	MsgErrGenConfig  = "failed to generate configuration: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/a3modlink/a3modlink.toml)"
	MsgFlagModsDir  = "Directory holding digit-named workshop mod directories"
	MsgFlagLinksDir = "Directory holding the named symlinks"
	MsgFlagBroken   = "Show only links with missing targets"
	MsgFlagWrite    = "Write config to the default location instead of stdout"
)
