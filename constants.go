package places

// UNLOCATED is the location precision value that excludes a record from the map.
const UNLOCATED string = "unlocated"

// SEE_ALSO is the link relation assigned to external authority cross-references.
const SEE_ALSO string = "seeAlso"

// INDEXING_CONTEXT is the JSON-LD context assigned to dataset indexing blocks.
const INDEXING_CONTEXT string = "https://schema.org/"

// INDEXING_TYPE is the JSON-LD type assigned to dataset indexing blocks.
const INDEXING_TYPE string = "Dataset"
