// Package parse reads SNBT text, as written by package encode, into a tag
// tree.
//
// Numbers carry a suffix naming their variant: b (Byte), s (Short), L
// (Long), f (Float) and d (Double); a bare integer is an Int and a bare
// decimal a Double. Arrays are written [B;...] and [I;...]. The words
// true and false read as the Bytes 1 and 0, and other bare words read as
// strings.
//
//	root, err := parse.Parse([]byte(`{display:{color:16711680},count:3s}`))
package parse
