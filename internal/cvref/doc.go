// Package cvref cross-checks the pure Go pipeline against OpenCV through
// gocv. It is only built with the opencv build tag, which needs OpenCV 4
// installed:
//
//	go test -tags opencv ./internal/cvref/
package cvref
