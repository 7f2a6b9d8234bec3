package build

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func IsDev() bool {
	return Version == "dev"
}
