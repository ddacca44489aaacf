// Package sectionheader renders section banners: a label centered between
// two rules of "//", suitable for pasting into source files as a section
// divider.
//
//	////////////////////////////////////////////////////////////////
//	//                         Handlers                           //
//	////////////////////////////////////////////////////////////////
//
// The package also provides Cmd, a small runner used by the section-header
// command that turns a RunFunc's returned error into a process exit status.
package sectionheader
