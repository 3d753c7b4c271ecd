package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"strconv"

	"resume-scorer/internal/domain/matching"
	"resume-scorer/internal/domain/scoring"
	"resume-scorer/internal/domain/skill"
)

const fingerprintLen = 16

func fingerprint(x *skill.Extractor, profiles []matching.JobProfile, sections []scoring.Section) string {
	h := sha256.New()

	writeField(h, "skills")
	writeField(h, x.Fingerprint())

	writeField(h, "profiles")
	writeField(h, strconv.Itoa(len(profiles)))
	for _, p := range profiles {
		writeField(h, p.Role)
		writeField(h, p.Skills)
	}

	writeField(h, "sections")
	writeField(h, strconv.Itoa(len(sections)))
	for _, s := range sections {
		writeField(h, s.Name)
		writeField(h, strconv.Itoa(len(s.Keywords)))
		for _, k := range s.Keywords {
			writeField(h, k)
		}
	}

	return hex.EncodeToString(h.Sum(nil))[:fingerprintLen]
}

func writeField(h hash.Hash, s string) {
	_, _ = io.WriteString(h, s)
	_, _ = h.Write([]byte{0})
}
