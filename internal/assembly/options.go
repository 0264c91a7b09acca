package assembly

const (
	// DefaultBackupName is the rollback document's file name. It never
	// changes between runs so the first backup ever written is kept.
	DefaultBackupName = "backup_fonts.reg"

	// DefaultForwardPrefix prefixes the winner's face name in the forward
	// document's file name.
	DefaultForwardPrefix = "change_fonts_to_"

	// RegExtension is appended to the forward file name.
	RegExtension = ".reg"
)

// Options configures where documents are written.
//
// Use DefaultOptions() and set OutputDir.
type Options struct {
	// OutputDir holds both documents. Default: "." (the CLI passes the
	// executable's directory).
	OutputDir string

	// BackupName is the rollback file name inside OutputDir.
	// Default: backup_fonts.reg
	BackupName string

	// ForwardPrefix is prepended to the sanitized face name.
	// Default: change_fonts_to_
	ForwardPrefix string
}

// DefaultOptions returns the standard file layout.
func DefaultOptions() Options {
	return Options{
		OutputDir:     ".",
		BackupName:    DefaultBackupName,
		ForwardPrefix: DefaultForwardPrefix,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.OutputDir == "" {
		o.OutputDir = d.OutputDir
	}
	if o.BackupName == "" {
		o.BackupName = d.BackupName
	}
	if o.ForwardPrefix == "" {
		o.ForwardPrefix = d.ForwardPrefix
	}
	return o
}
