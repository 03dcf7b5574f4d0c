package model

// PatchReport records the outcome of mutating a single patch file. Batch
// runs persist these as the manifest so the evaluation harness can skip
// artifacts with zero mutations.
type PatchReport struct {
	Input     Path `yaml:"input"`
	Output    Path `yaml:"output"`
	Mode      Mode `yaml:"mode"`
	Mutations int  `yaml:"mutations"`
	Fallback  bool `yaml:"fallback"`
}

// FileStat summarizes one file section of a patch for the preview command.
type FileStat struct {
	Path       string
	AddedLines int
	// Structural reports, per mode, whether any added line in this file
	// matches a structural rewrite rule.
	Structural map[Mode]bool
}
