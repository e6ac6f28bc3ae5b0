package browser

// Paginate slices the filtered content into a bounded, resumable window.
//
// Offsets and lengths are byte offsets into the UTF-8 string. Negative
// offset and maxLength values are clamped to 0, never rejected. An offset
// beyond the end of the content yields an empty window with HasMore=false.
//
// When maxLength is nil the window always runs to the end of the content
// and HasMore is false regardless of offset.
func Paginate(content string, offset int, maxLength *int) ExtractResult {
	total := len(content)

	start := offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}

	end := total
	hasMore := false
	if maxLength != nil {
		ml := *maxLength
		if ml < 0 {
			ml = 0
		}
		end = start + ml
		if end > total {
			end = total
		}
		hasMore = end < total
	}

	return ExtractResult{
		Content:      content[start:end],
		TotalLength:  total,
		HasMore:      hasMore,
		ActualOffset: start,
		ActualLength: end - start,
	}
}
