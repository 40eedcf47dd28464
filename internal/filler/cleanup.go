package filler

import "regexp"

// Cleanup patterns for serialized-metadata artifacts that leak into template
// text from a malformed upstream data shape. This is a compatibility shim
// for a known leak, not a general sanitizer; the pattern set is fixed.
var metadataArtifactRes = []*regexp.Regexp{
	regexp.MustCompile(`map\[description:[^\]]*\]`),
	regexp.MustCompile(`label:#if\s+[^\s<]+`),
	regexp.MustCompile(`label:/if`),
	regexp.MustCompile(`required:(?:true|false)`),
	regexp.MustCompile(`type:\w+`),
}

// CleanupMetadataArtifacts strips stray serialized-metadata fragments from
// h. The section renderer also runs this over raw section HTML before
// substitution.
func CleanupMetadataArtifacts(h string) string {
	for _, re := range metadataArtifactRes {
		h = re.ReplaceAllString(h, "")
	}
	return h
}
