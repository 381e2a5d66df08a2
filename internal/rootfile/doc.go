// Package rootfile writes text into ROOT files and reads it back.
//
// ROOT I/O is delegated to go-hep.org/x/hep/groot, a pure-Go implementation
// of the ROOT file format, so no C++ ROOT installation is required.
//
// Key responsibilities:
//   - Recreate a ROOT file and embed a text as TObjString entries under
//     <tagger>/<collection>/<entry> (Write)
//   - Read the embedded entries back and list directory contents
//     (ReadEntries, ListDir)
//   - Compare a written file against the original text (Verify)
package rootfile
