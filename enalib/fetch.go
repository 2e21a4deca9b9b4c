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
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mattrbianchi/twig"
	"github.com/mitre/enacp/flags"
	"github.com/pkg/errors"
)

// Resolver resolves an accession into the files the archive has registered
// for it.
type Resolver interface {
	Retrieve(accession string) (*Accession, error)
}

// Transferer copies one remote file into destDir. Implementations own the
// actual copy mechanism, the Fetcher only observes success or failure.
type Transferer interface {
	Fetch(remotePath, destDir string) error
}

// Fetcher resolves accessions and copies their files into per-accession
// directories under OutDir.
type Fetcher struct {
	API        Resolver
	Transferer Transferer
	OutDir     string
	SkipVerify bool
}

// Fetch runs the whole pipeline for one accession: look up its file report,
// create the destination directory, then copy each file in the order the API
// listed them. A file that fails to copy doesn't stop the rest, the failed
// paths are collected and reported together at the end.
func (f *Fetcher) Fetch(accession string) error {
	acc, err := f.API.Retrieve(accession)
	if err != nil {
		return err
	}
	if len(acc.Files) == 0 {
		return &NotFoundError{Accession: accession}
	}
	dir := filepath.Join(f.OutDir, acc.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Path: dir, Err: err}
	}
	if err := checkDiskSpace(dir, acc); err != nil {
		return err
	}
	var failed []string
	for _, file := range acc.Files {
		twig.Debugf("copying %s into %s", file.RemotePath, dir)
		if err := f.Transferer.Fetch(file.RemotePath, dir); err != nil {
			twig.Debug(err)
			if !flags.Silent {
				fmt.Printf("failed to copy %s: %s\n", file.RemotePath, err.Error())
			}
			failed = append(failed, file.RemotePath)
			continue
		}
		if !f.SkipVerify && file.Md5Hash != "" {
			local := filepath.Join(dir, path.Base(file.RemotePath))
			sum, err := md5Sum(local)
			if err != nil {
				twig.Debug(err)
				if !flags.Silent {
					fmt.Printf("couldn't verify %s: %s\n", local, err.Error())
				}
				failed = append(failed, file.RemotePath)
				continue
			}
			if sum != file.Md5Hash {
				if !flags.Silent {
					fmt.Printf("md5 mismatch for %s: expected %s, got %s\n", local, file.Md5Hash, sum)
				}
				failed = append(failed, file.RemotePath)
				continue
			}
		}
	}
	if len(failed) > 0 {
		return &TransferError{Accession: acc.ID, Failed: failed}
	}
	// Sample accessions bundle reads from several runs, fold them into one
	// pair of fastq files named after the sample.
	if strings.HasPrefix(acc.ID, "SAM") {
		if err := MergePairedReads(dir, acc.ID); err != nil {
			return err
		}
	}
	if !flags.Silent {
		fmt.Printf("accession %s finished: %d file(s) successfully copied.\n", acc.ID, len(acc.Files))
	}
	return nil
}

// checkDiskSpace refuses to start copying when the file report's combined
// sizes already exceed what the destination's filesystem has available. The
// transfer client would only find out partway through filling the disk.
func checkDiskSpace(dir string, acc *Accession) error {
	var total uint64
	for _, file := range acc.Files {
		total += file.Size
	}
	var stat syscall.Statfs_t
	if err := syscall.Statfs(dir, &stat); err != nil {
		return errors.Wrapf(err, "couldn't check available disk space for %s", dir)
	}
	// Available blocks * size per block = available space in bytes
	available := stat.Bavail * uint64(stat.Bsize)
	if available < total {
		return errors.Errorf("DISK FULL: it appears there are only %d available bytes on disk and the files for accession %s are %d bytes", available, acc.ID, total)
	}
	return nil
}

func md5Sum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
