package vocabstore

import "time"

// Video is a processed video and its cached transcript.
type Video struct {
	ID           string
	Title        string
	SubtitleText string
	CreatedAt    time.Time
}

// Word is a vocabulary entry shared across all videos it appeared in.
type Word struct {
	ID         int64
	Word       string
	Definition string
	Difficulty int
	AddedAt    time.Time
}

// Occurrence links a word to the sentence it appeared in within one video.
type Occurrence struct {
	ID                 int64
	WordID             int64
	VideoID            string
	VideoTitle         string
	OriginalSentence   string
	TranslatedSentence string
	CreatedAt          time.Time
}

// Entry is one enriched word handed to SaveBatch.
type Entry struct {
	Word               string
	Definition         string
	OriginalSentence   string
	TranslatedSentence string
}

// Stats summarizes database contents for status reporting.
type Stats struct {
	Videos      int
	Words       int
	Occurrences int
}
