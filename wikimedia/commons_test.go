package wikimedia

import (
	"testing"
)

func TestThumbnailURL(t *testing.T) {

	tests := []struct {
		name     string
		width    int
		expected string
	}{
		{
			"Forum Romanum.jpg",
			800,
			"https://upload.wikimedia.org/wikipedia/commons/thumb/f/fb/Forum_Romanum.jpg/800px-Forum_Romanum.jpg",
		},
		{
			"Forum_Romanum.jpg",
			800,
			"https://upload.wikimedia.org/wikipedia/commons/thumb/f/fb/Forum_Romanum.jpg/800px-Forum_Romanum.jpg",
		},
		{
			"Hadrians Wall at Greenhead Lough.jpg",
			800,
			"https://upload.wikimedia.org/wikipedia/commons/thumb/7/7c/Hadrians_Wall_at_Greenhead_Lough.jpg/800px-Hadrians_Wall_at_Greenhead_Lough.jpg",
		},
		{
			"Whitby Abbey 2006.jpg",
			400,
			"https://upload.wikimedia.org/wikipedia/commons/thumb/d/d2/Whitby_Abbey_2006.jpg/400px-Whitby_Abbey_2006.jpg",
		},
	}

	for _, tc := range tests {

		u := ThumbnailURL(tc.name, tc.width)

		if u != tc.expected {
			t.Fatalf("Unexpected URL for '%s', expected '%s' but got '%s'", tc.name, tc.expected, u)
		}
	}
}
