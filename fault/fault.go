// SPDX-License-Identifier: ISC
// Copyright (c) 2025 Treebench Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrDatasetTooSmall      = InvalidError("dataset size is too small")
	ErrInvalidDistribution  = InvalidError("invalid distribution")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrInvalidSkewFactor    = InvalidError("skew factor must be greater than one")
	ErrInvalidTreeVariant   = InvalidError("invalid tree variant")
	ErrInvalidWorkload      = InvalidError("invalid workload")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundDatasetFile  = NotFoundError("dataset file is not found")
	ErrNotInitialised       = ProcessError("not initialised")
	ErrRequiredConfigFile   = InvalidError("config file is required")
	ErrRequiredOutputDir    = InvalidError("output folder is required")
	ErrRequiredSizes        = InvalidError("at least one size is required")
	ErrRequiredVariants     = InvalidError("at least one variant is required")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
