package steamworkshop

import "fmt"

// CollectionChild is a single item belonging to a collection.
type CollectionChild struct {
	PublishedFileID int64 `json:"publishedfileid,string"`
	SortOrder       int   `json:"sortorder"`
	FileType        int   `json:"filetype"`
}

// CollectionDetails describes a collection. Children is nil
// when the field was absent from the response, e.g. because
// the requested ID is not a collection.
type CollectionDetails struct {
	PublishedFileID int64             `json:"publishedfileid,string"`
	Result          int               `json:"result"`
	Children        []CollectionChild `json:"children"`
}

// GetCollectionDetailsResponse is the body returned by
// ISteamRemoteStorage/GetCollectionDetails.
type GetCollectionDetailsResponse struct {
	Response *struct {
		Result            int                 `json:"result"`
		ResultCount       int                 `json:"resultcount"`
		CollectionDetails []CollectionDetails `json:"collectiondetails"`
	} `json:"response"`
}

// Validate checks that every field a collection lookup
// depends on is present.
func (r *GetCollectionDetailsResponse) Validate() error {
	if r.Response == nil {
		return &MissingFieldError{Field: "response"}
	}

	if r.Response.CollectionDetails == nil {
		return &MissingFieldError{Field: "response.collectiondetails"}
	}

	for i, details := range r.Response.CollectionDetails {
		if details.Children == nil {
			return &MissingFieldError{Field: fmt.Sprintf("response.collectiondetails[%d].children", i)}
		}

		for j, child := range details.Children {
			if child.PublishedFileID == 0 {
				return &MissingFieldError{Field: fmt.Sprintf("response.collectiondetails[%d].children[%d].publishedfileid", i, j)}
			}
		}
	}

	return nil
}

// PublishedFileDetails is the subset of a published file's
// metadata needed to name it on disk.
type PublishedFileDetails struct {
	PublishedFileID int64  `json:"publishedfileid,string"`
	Result          int    `json:"result"`
	Filename        string `json:"filename"`
	Title           string `json:"title"`
}

// GetPublishedFileDetailsResponse is the body returned by
// ISteamRemoteStorage/GetPublishedFileDetails.
type GetPublishedFileDetailsResponse struct {
	Response *struct {
		Result               int                    `json:"result"`
		ResultCount          int                    `json:"resultcount"`
		PublishedFileDetails []PublishedFileDetails `json:"publishedfiledetails"`
	} `json:"response"`
}

// Validate checks that the response carries a list of details.
// Individual entries are not validated; callers decide what to
// do with an entry that lacks a name.
func (r *GetPublishedFileDetailsResponse) Validate() error {
	if r.Response == nil {
		return &MissingFieldError{Field: "response"}
	}

	if r.Response.PublishedFileDetails == nil {
		return &MissingFieldError{Field: "response.publishedfiledetails"}
	}

	return nil
}
