// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package main

import (
	"fmt"

	"github.com/ostafen/gifdecode/cmd/cmd"
	"github.com/ostafen/gifdecode/internal/version"
)

func main() {
	PrintLogo()

	_ = cmd.Execute()
}

func PrintLogo() {
	fmt.Println("      _  __      _                 _       ")
	fmt.Println("  ___(_)/ _|  __| | ___  ___ ___   | |_ ___ ")
	fmt.Println(" / __| | |_  / _` |/ _ \\/ __/ _ \\  | __/ _ \\")
	fmt.Println("| (_ | |  _|| (_| |  __/ (_| (_) | | ||  __/")
	fmt.Println(" \\___|_|_|   \\__,_|\\___|\\___\\___/   \\__\\___|")
	fmt.Println()
	fmt.Println("GIF container/LZW decoder and frame renderer")
	fmt.Println()
	fmt.Printf("Version:    %s\n", version.Version)
	fmt.Printf("Commit:     %s\n", version.CommitHash)
	fmt.Printf("Build Time: %s\n", version.BuildTime)
	fmt.Println(" ")
}
