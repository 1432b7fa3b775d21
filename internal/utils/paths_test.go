package utils

import (
	"testing"
)

func TestGetAbsolutePath_AlreadyAbsolute(t *testing.T) {
	absolutePath := "/test/file.txt"

	result := GetAbsolutePath(absolutePath, "/base/dir")

	if result != absolutePath {
		t.Errorf("Expected %s, got %s", absolutePath, result)
	}
}

func TestGetAbsolutePath_RelativePath(t *testing.T) {
	relativePath := "relative/file.txt"
	baseDir := "/base/dir"

	result := GetAbsolutePath(relativePath, baseDir)
	expected := "/base/dir/relative/file.txt"

	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestGetAbsolutePath_DotPath(t *testing.T) {
	relativePath := "./file.txt"
	baseDir := "/base/dir"

	result := GetAbsolutePath(relativePath, baseDir)
	expected := "/base/dir/file.txt"

	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestGetAbsolutePath_DoubleDotPath(t *testing.T) {
	relativePath := "../file.txt"
	baseDir := "/base/dir"

	result := GetAbsolutePath(relativePath, baseDir)
	expected := "/base/file.txt"

	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestGetAbsolutePath_EmptyPath(t *testing.T) {
	result := GetAbsolutePath("", "/base/dir")
	expected := "/base/dir"

	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}
