// Package wheelhouse unpacks archives of pre-downloaded Python wheels so pip
// can install from them without network access.
package wheelhouse

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/xi2/xz"          // For reading .xz compressed data

	"reqcheck/internal/logger"
)

// Extract unpacks archive into dest and returns the directory to hand to
// pip's --find-links. When every entry lives under one top-level folder,
// that folder is returned; otherwise dest itself.
func Extract(archive, dest string) (string, error) {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dest, err)
	}

	var (
		names []string
		err   error
	)
	switch {
	case strings.HasSuffix(archive, ".zip"):
		logger.Debug("[DEBUG] compression type is zip\n")
		names, err = extractZip(archive, dest)
	case strings.HasSuffix(archive, ".7z"):
		logger.Debug("[DEBUG] compression type is .7z\n")
		names, err = extract7z(archive, dest)
	case strings.HasSuffix(archive, ".tar"), strings.HasSuffix(archive, ".tar.gz"), strings.HasSuffix(archive, ".tgz"),
		strings.HasSuffix(archive, ".tar.bz2"), strings.HasSuffix(archive, ".tar.xz"):
		logger.Debug("[DEBUG] compression type is .tar.*\n")
		names, err = extractTar(archive, dest)
	default:
		return "", fmt.Errorf("unsupported archive format: %s", archive)
	}
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", archive, err)
	}

	if root := commonRoot(names); root != "" {
		return filepath.Join(dest, root), nil
	}
	return dest, nil
}

// commonRoot returns the single top-level directory shared by all names, or "".
func commonRoot(names []string) string {
	root := ""
	for _, name := range names {
		name = strings.TrimPrefix(filepath.ToSlash(name), "./")
		first, _, nested := strings.Cut(name, "/")
		if !nested {
			// A bare file at the top level; a bare directory entry has a trailing slash.
			return ""
		}
		if root == "" {
			root = first
		} else if root != first {
			return ""
		}
	}
	return root
}

// target resolves name inside dest and rejects entries that would escape it.
func target(dest, name string) (string, error) {
	path := filepath.Join(dest, name)
	rel, err := filepath.Rel(dest, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("illegal path in archive: %s", name)
	}
	return path, nil
}

// writeFile copies r into path, creating parent directories.
func writeFile(path string, r io.Reader, mode fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if mode == 0 {
		mode = 0644
	}
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// extractTar handles tar and compressed tar variants.
func extractTar(src, dest string) ([]string, error) {
	logger.Debug("[DEBUG] uncompressing %s to %s\n", src, dest)
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		reader = xzr
	}

	var names []string
	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		path, err := target(dest, hdr.Name)
		if err != nil {
			return nil, err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(path, 0755); err != nil {
				return nil, err
			}
		case tar.TypeReg:
			if err := writeFile(path, tr, fs.FileMode(hdr.Mode).Perm()); err != nil {
				return nil, err
			}
		default:
			logger.Debug("[DEBUG] Skipping %s (type %c)\n", hdr.Name, hdr.Typeflag)
			continue
		}
		names = append(names, hdr.Name)
	}
	return names, nil
}

// extractZip extracts a .zip archive.
func extractZip(src, dest string) ([]string, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		path, err := target(dest, f.Name)
		if err != nil {
			return nil, err
		}
		names = append(names, f.Name)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, 0755); err != nil {
				return nil, err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		err = writeFile(path, rc, f.Mode().Perm())
		rc.Close()
		if err != nil {
			return nil, err
		}
	}
	return names, nil
}

// extract7z handles .7z extraction using the sevenzip library.
func extract7z(src, dest string) ([]string, error) {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open 7z archive: %w", err)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		path, err := target(dest, f.Name)
		if err != nil {
			return nil, err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, 0755); err != nil {
				return nil, err
			}
			names = append(names, f.Name+"/")
			continue
		}
		names = append(names, f.Name)
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		err = writeFile(path, rc, f.Mode().Perm())
		rc.Close()
		if err != nil {
			return nil, err
		}
	}
	return names, nil
}
