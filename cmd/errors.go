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

package cmd

import (
	"fmt"
	"strings"

	"github.com/mattrbianchi/twig"
)

func prettyPrintError(err error) {
	// Accession errors
	if strings.Contains(err.Error(), "no accessions provided") {
		twig.Debug(err)
		fmt.Println("No accessions provided: enacp needs an accession in order to know what files to copy.")
		return
	}
	if strings.Contains(err.Error(), "couldn't open accession list file") {
		twig.Debug(err)
		fmt.Println("Bad accession list file or path: enacp interpreted the accession argument as a path to an accession list file, but could not open the file at the path specified. Make sure the path leads to a valid accession list file and that you have permissions to read that file.")
		return
	}
	if strings.Contains(err.Error(), "no readable form") {
		twig.Debug(err)
		fmt.Println("Bad accession list: enacp couldn't find any accessions in the argument given. Example of a well formatted accession list: \"ERR164407,ERR164408\".")
		return
	}

	// API errors
	if strings.Contains(err.Error(), "failed to look up accession") {
		twig.Debug(err)
		fmt.Println("Failed to look up accession: It seems that enacp has encountered an error while using the ENA Portal API to determine the file locations for the accession. Run enacp with verbose enabled to see the exchange with the API.")
		fmt.Println(err.Error())
		return
	}
	if strings.Contains(err.Error(), "no files registered") {
		twig.Debug(err)
		fmt.Println(err.Error())
		fmt.Println("The accession resolved but the archive lists no fastq files for it. Double check the accession on the ENA browser.")
		return
	}

	// Destination errors
	if strings.Contains(err.Error(), "couldn't create destination directory") {
		twig.Debug(err)
		fmt.Println(err.Error())
		fmt.Println("Make sure you have permissions to write in the output directory before trying again.")
		return
	}

	// Transfer errors
	if strings.Contains(err.Error(), "couldn't find ascp") ||
		strings.Contains(err.Error(), "couldn't find aspera identity file") {
		twig.Debug(err)
		fmt.Println(err.Error())
		fmt.Println("enacp relies on an installed and configured aspera cli to copy files. Install it under your home directory or point enacp at the identity file with the identity flag. If no aspera install is possible, rerun with --mode http.")
		return
	}
	if strings.Contains(err.Error(), "failed to copy") {
		twig.Debug(err)
		fmt.Println(err.Error())
		return
	}

	fmt.Println(err.Error())
}
