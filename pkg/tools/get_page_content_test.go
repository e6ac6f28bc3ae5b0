package tools

import (
	"reflect"
	"testing"

	"github.com/morimorihoge/playwright-mcp/pkg/browser"
)

func TestGetPageContentInputExtractOptions(t *testing.T) {
	maxLength := 500
	in := GetPageContentInput{
		Preset:          "minimal",
		Selector:        ".article",
		ExcludeTags:     []string{"iframe"},
		Compress:        true,
		IncludeComments: true,
		PrettyPrint:     true,
		HeadOnly:        true,
		BodyOnly:        true,
		Offset:          100,
		MaxLength:       &maxLength,
	}

	got := in.extractOptions()
	want := browser.ExtractOptions{
		Preset:          "minimal",
		Selector:        ".article",
		ExcludeTags:     []string{"iframe"},
		Compress:        true,
		IncludeComments: true,
		PrettyPrint:     true,
		HeadOnly:        true,
		BodyOnly:        true,
		Offset:          100,
		MaxLength:       &maxLength,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractOptions() = %+v, want %+v", got, want)
	}
}

func TestGetPageContentInputZeroValue(t *testing.T) {
	got := GetPageContentInput{}.extractOptions()
	if !reflect.DeepEqual(got, browser.ExtractOptions{}) {
		t.Errorf("zero input maps to non-zero options: %+v", got)
	}
}
