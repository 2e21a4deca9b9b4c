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
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	debug bool
	addr  string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug output.")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		panic("INTERNAL ERROR: could not bind debug flag to debug environment variable")
	}

	rootCmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Address to serve the mock portal on.")

	viper.AutomaticEnv()
}

var rootCmd = &cobra.Command{
	Use:   "mockportal",
	Short: "A mock implementation of the ENA Portal API's filereport endpoint.",
	Long:  ``,
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	r := mux.NewRouter()
	r.HandleFunc("/filereport", FileReportHandler)
	return http.ListenAndServe(addr, r)
}

type report struct {
	Accession  string `json:"run_accession"`
	FastqFtp   string `json:"fastq_ftp"`
	FastqMd5   string `json:"fastq_md5"`
	FastqBytes string `json:"fastq_bytes"`
}

// FileReportHandler answers like the portal's filereport endpoint would for
// any run accession: two mates hosted on the archive's ftp tree. Accessions
// starting with "X" get an empty report so the not-found path can be
// exercised too.
func FileReportHandler(w http.ResponseWriter, r *http.Request) {
	acc := r.URL.Query().Get("accession")
	if acc == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	response := []report{}
	if acc[0] != 'X' {
		response = append(response, report{
			Accession: acc,
			FastqFtp: fmt.Sprintf("ftp.sra.ebi.ac.uk/vol1/fastq/%s/%s_1.fastq.gz;ftp.sra.ebi.ac.uk/vol1/fastq/%s/%s_2.fastq.gz",
				acc, acc, acc, acc),
			FastqMd5:   "d41d8cd98f00b204e9800998ecf8427e;d41d8cd98f00b204e9800998ecf8427e",
			FastqBytes: "51;51",
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(&response); err != nil {
		panic("couldn't encode json")
	}
	if debug {
		js, _ := json.Marshal(&response)
		fmt.Println(string(js))
	}
}

// Execute runs the root command of mockportal.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
