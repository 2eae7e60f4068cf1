// Package brand holds Molten Labs company metadata.
package brand

// Company metadata.
const (
	Company = "Molten Labs"
	Tagline = "Let them cook"
	Website = "https://molten.dev"
	GitHub  = "https://github.com/moltenlabs"
)

// Info is the metadata as a serializable value.
type Info struct {
	Company string `json:"company" yaml:"company"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Website string `json:"website" yaml:"website"`
	GitHub  string `json:"github" yaml:"github"`
}

// Metadata returns the company metadata.
func Metadata() Info {
	return Info{Company: Company, Tagline: Tagline, Website: Website, GitHub: GitHub}
}
