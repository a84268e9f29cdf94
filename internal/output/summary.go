package output

import "fmt"

const (
	summaryLineFormat     = "\n%d %s, %d %s"
	directorySingularNoun = "directory"
	directoryPluralNoun   = "directories"
	fileSingularNoun      = "file"
	filePluralNoun        = "files"
)

// FormatSummaryLine renders the closing report, e.g. "\n3 directories, 1 file".
func FormatSummaryLine(directories int, files int) string {
	return fmt.Sprintf(summaryLineFormat, directories, pluralize(directories, directorySingularNoun, directoryPluralNoun), files, pluralize(files, fileSingularNoun, filePluralNoun))
}

func pluralize(count int, singular string, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
