package domain

const (
	// DefaultConfigFile is the config file looked up when --config is not given.
	DefaultConfigFile = "symtab.yaml"

	// DefaultStateFile is the snapshot file used by --state when no path is given.
	DefaultStateFile = ".symtab/state.json"

	// StdinSource is the source name that reads from standard input.
	StdinSource = "-"

	// PrivateFilePerm is the permission used for files written by symtab.
	PrivateFilePerm = 0o600

	// DirPerm is the permission used for directories created by symtab.
	DirPerm = 0o750
)
