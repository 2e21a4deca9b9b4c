package ena

import (
	"path"
	"strconv"
	"strings"

	"github.com/mattrbianchi/twig"
	"github.com/mitre/enacp/enalib"
	"github.com/mitre/enacp/info"
	"github.com/pkg/errors"
)

// Report The JSON object the portal API uses to represent one run's file
// report. The fastq fields are parallel semicolon-delimited lists.
type Report struct {
	Accession  string `json:"run_accession"`
	FastqFtp   string `json:"fastq_ftp"`
	FastqMd5   string `json:"fastq_md5"`
	FastqBytes string `json:"fastq_bytes"`
}

// Validate Report
// 1. The report names a run accession.
// Note: an empty fastq_ftp is legal here, a report with no files is decided
// across the whole response, not per run.
func (r *Report) Validate() error {
	if r.Accession == "" {
		return errors.Errorf("%s returned a file report without a run accession", info.PortalName)
	}
	return nil
}

// Files Changes the portal representation of a report into the enacp
// representation, preserving the order of the fastq_ftp list.
func (r *Report) Files() []enalib.File {
	paths := splitList(r.FastqFtp)
	md5s := splitList(r.FastqMd5)
	sizes := splitList(r.FastqBytes)
	ff := make([]enalib.File, 0, len(paths))
	for i, p := range paths {
		f := enalib.File{
			Name:       path.Base(p),
			RemotePath: p,
		}
		if i < len(md5s) {
			f.Md5Hash = md5s[i]
		}
		if i < len(sizes) {
			size, err := strconv.ParseUint(sizes[i], 10, 64)
			if err != nil {
				twig.Debugf("%s: %s: failed to parse file size: %s", r.Accession, f.Name, sizes[i])
			} else {
				f.Size = size
			}
		}
		ff = append(ff, f)
	}
	return ff
}

func splitList(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ";")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

type apiError struct {
	Status  int    `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}
