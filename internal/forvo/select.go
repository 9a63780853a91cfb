package forvo

import "oto2mcp/internal/model"

// SelectBest picks the item to download. The provider already returns lists
// sorted by descending rating when order=rate-desc, so "best" is simply the
// first element, optionally after a sex filter.
//
// When the requested sex matches nothing the unfiltered top item is used
// instead of erroring: a wrong-voiced recording beats no recording on a
// flashcard.
func SelectBest(items []model.Pronunciation, sex string) (model.Pronunciation, bool) {
	if len(items) == 0 {
		return model.Pronunciation{}, false
	}
	if sex != "" {
		for _, item := range items {
			if item.Sex == sex {
				return item, true
			}
		}
	}
	return items[0], true
}

// FilterBySex returns the items matching sex, or all items when sex is "".
func FilterBySex(items []model.Pronunciation, sex string) []model.Pronunciation {
	if sex == "" {
		return items
	}
	filtered := make([]model.Pronunciation, 0, len(items))
	for _, item := range items {
		if item.Sex == sex {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterByMinRating drops items rated below min. min <= 0 keeps everything.
func FilterByMinRating(items []model.Pronunciation, min int) []model.Pronunciation {
	if min <= 0 {
		return items
	}
	filtered := make([]model.Pronunciation, 0, len(items))
	for _, item := range items {
		if item.Rate >= min {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
