// Copyright 2019 The MITRE Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package enalib

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// MergePairedReads concatenates the per-run forward and reverse fastq files
// in dir into <accession>_1.fastq.gz and <accession>_2.fastq.gz and removes
// the originals. Gzip members concatenate into a valid gzip stream, so the
// runs' reads can be folded together without recompressing.
func MergePairedReads(dir, accession string) error {
	forward, err := readsWithSuffix(dir, accession, "_1.fastq.gz")
	if err != nil {
		return err
	}
	reverse, err := readsWithSuffix(dir, accession, "_2.fastq.gz")
	if err != nil {
		return err
	}
	if err := concatReads(filepath.Join(dir, accession+"_1.fastq.gz"), forward); err != nil {
		return err
	}
	return concatReads(filepath.Join(dir, accession+"_2.fastq.gz"), reverse)
}

// readsWithSuffix lists the per-run read files for one direction. A merged
// file left by an earlier run carries the accession's own name and must be
// skipped, it would otherwise become both the destination and a source of
// its own merge.
func readsWithSuffix(dir, accession, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't list downloaded files in %s", dir)
	}
	var reads []string
	for _, e := range entries {
		if e.IsDir() || e.Name() == accession+suffix {
			continue
		}
		if strings.HasSuffix(e.Name(), suffix) {
			reads = append(reads, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(reads)
	return reads, nil
}

func concatReads(dest string, sources []string) error {
	if len(sources) == 0 {
		return nil
	}
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "couldn't create merged file %s", dest)
	}
	for _, src := range sources {
		in, err := os.Open(src)
		if err != nil {
			out.Close()
			return errors.Wrapf(err, "couldn't open %s for merging", src)
		}
		_, err = io.Copy(out, in)
		in.Close()
		if err != nil {
			out.Close()
			return errors.Wrapf(err, "couldn't append %s to %s", src, dest)
		}
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "couldn't finish merged file %s", dest)
	}
	for _, src := range sources {
		if err := os.Remove(src); err != nil {
			return errors.Wrapf(err, "couldn't remove %s after merging", src)
		}
	}
	return nil
}
