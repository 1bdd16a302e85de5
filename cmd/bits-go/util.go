/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package main

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

type stdin struct{}

func (stdin) Read(bs []byte) (int, error) { return os.Stdin.Read(bs) }
func (stdin) Close() error                { return nil }

// OpenInput opens an input stream. The name "-" means stdin.
func OpenInput(in string) (io.ReadCloser, error) {
	if in == "-" {
		return stdin{}, nil
	}
	r, err := os.Open(in)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ReadInput reads the whole of the named input.
func ReadInput(in string) ([]byte, error) {
	r, err := OpenInput(in)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	bs, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %v", inputName(in))
	}
	return bs, nil
}

func inputName(in string) string {
	if in == "-" {
		return "<stdin>"
	}
	return in
}

type uncloseable struct {
	w io.Writer
}

func (u uncloseable) Write(bs []byte) (int, error) {
	return u.w.Write(bs)
}

func (u uncloseable) Close() error {
	return nil
}

// OpenOutput opens the output stream.
func OpenOutput(outf string) (io.WriteCloser, error) {
	if outf == "" {
		return uncloseable{os.Stdout}, nil
	}
	return os.OpenFile(outf, os.O_RDWR|os.O_TRUNC|os.O_CREATE, 0644)
}
