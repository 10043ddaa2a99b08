package vocabulary

// Namespace base IRIs.
//
// TimeBase deliberately has no trailing separator: the upstream mapping
// concatenated term names directly onto this base, so the W3C Time terms
// below reproduce that exact shape.
const (
	DCTBase    = "http://purl.org/dc/terms/"
	DCATBase   = "http://www.w3.org/ns/dcat#"
	DCATAPBase = "http://data.europa.eu/r5r/"
	ADMSBase   = "http://www.w3.org/ns/adms#"
	VCardBase  = "http://www.w3.org/2006/vcard/ns#"
	FOAFBase   = "http://xmlns.com/foaf/0.1/"
	SchemaBase = "http://schema.org/"
	TimeBase   = "http://www.w3.org/2006/time"
	LOCNBase   = "http://www.w3.org/ns/locn#"
	GSPBase    = "http://www.opengis.net/ont/geosparql#"
	OWLBase    = "http://www.w3.org/2002/07/owl#"
	SPDXBase   = "http://spdx.org/rdf/terms#"
	RDFBase    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSBase   = "http://www.w3.org/2000/01/rdf-schema#"
	SKOSBase   = "http://www.w3.org/2004/02/skos/core#"
	XSDBase    = "http://www.w3.org/2001/XMLSchema#"
)

// Prefixes maps the short names bound on serialized output to their
// namespace bases.
var Prefixes = map[string]string{
	"dct":    DCTBase,
	"dcat":   DCATBase,
	"dcatap": DCATAPBase,
	"adms":   ADMSBase,
	"vcard":  VCardBase,
	"foaf":   FOAFBase,
	"schema": SchemaBase,
	"time":   TimeBase,
	"skos":   SKOSBase,
	"locn":   LOCNBase,
	"gsp":    GSPBase,
	"owl":    OWLBase,
	"spdx":   SPDXBase,
}

// Dublin Core terms.
const (
	DCTTitle              = DCTBase + "title"
	DCTDescription        = DCTBase + "description"
	DCTIssued             = DCTBase + "issued"
	DCTModified           = DCTBase + "modified"
	DCTIdentifier         = DCTBase + "identifier"
	DCTAccrualPeriodicity = DCTBase + "accrualPeriodicity"
	DCTProvenance         = DCTBase + "provenance"
	DCTType               = DCTBase + "type"
	DCTLanguage           = DCTBase + "language"
	DCTConformsTo         = DCTBase + "conformsTo"
	DCTRelation           = DCTBase + "relation"
	DCTHasVersion         = DCTBase + "hasVersion"
	DCTIsVersionOf        = DCTBase + "isVersionOf"
	DCTIsReferencedBy     = DCTBase + "isReferencedBy"
	DCTSource             = DCTBase + "source"
	DCTTemporal           = DCTBase + "temporal"
	DCTSpatial            = DCTBase + "spatial"
	DCTAccessRights       = DCTBase + "accessRights"
	DCTLicense            = DCTBase + "license"
	DCTRights             = DCTBase + "rights"
	DCTPublisher          = DCTBase + "publisher"
	DCTFormat             = DCTBase + "format"
	DCTPrivate            = DCTBase + "private"
	DCTHasPart            = DCTBase + "hasPart"
	DCTIMT                = DCTBase + "IMT"
	DCTLocation           = DCTBase + "Location"
	DCTRightsStatement    = DCTBase + "RightsStatement"
	DCTPeriodOfTime       = DCTBase + "PeriodOfTime"
)

// DCAT classes and properties.
const (
	DCATDataset                  = DCATBase + "Dataset"
	DCATDistribution             = DCATBase + "Distribution"
	DCATCatalog                  = DCATBase + "Catalog"
	DCATDataService              = DCATBase + "DataService"
	DCATKeyword                  = DCATBase + "keyword"
	DCATLandingPage              = DCATBase + "landingPage"
	DCATContactPoint             = DCATBase + "contactPoint"
	DCATTheme                    = DCATBase + "theme"
	DCATDatasetProp              = DCATBase + "dataset"
	DCATDistributionProp         = DCATBase + "distribution"
	DCATAccessURL                = DCATBase + "accessURL"
	DCATDownloadURL              = DCATBase + "downloadURL"
	DCATMediaType                = DCATBase + "mediaType"
	DCATByteSize                 = DCATBase + "byteSize"
	DCATStartDate                = DCATBase + "startDate"
	DCATEndDate                  = DCATBase + "endDate"
	DCATBBox                     = DCATBase + "bbox"
	DCATCentroid                 = DCATBase + "centroid"
	DCATAccessService            = DCATBase + "accessService"
	DCATEndpointURL              = DCATBase + "endpointURL"
	DCATEndpointDescription      = DCATBase + "endpointDescription"
	DCATServesDataset            = DCATBase + "servesDataset"
	DCATTemporalResolution       = DCATBase + "temporalResolution"
	DCATSpatialResolutionMeters  = DCATBase + "spatialResolutionInMeters"
	DCATCompressFormat           = DCATBase + "compressFormat"
	DCATPackageFormat            = DCATBase + "packageFormat"
	DCATAccessRights             = DCATBase + "accessRights"
	// Portal-specific extensions carried in the DCAT namespace upstream.
	DCATKategori                 = DCATBase + "kategori"
	DCATPrioritasTahun           = DCATBase + "prioritas_tahun"
)

// DCAT-AP (v2) terms.
const (
	DCATAPAvailability = DCATAPBase + "availability"
)

// ADMS terms.
const (
	ADMSVersion      = ADMSBase + "version"
	ADMSVersionNotes = ADMSBase + "versionNotes"
	ADMSIdentifier   = ADMSBase + "identifier"
	ADMSSample       = ADMSBase + "sample"
	ADMSContactPoint = ADMSBase + "contactPoint"
	ADMSStatus       = ADMSBase + "status"
)

// vCard terms.
const (
	VCardOrganization = VCardBase + "Organization"
	VCardFn           = VCardBase + "fn"
	VCardHasFN        = VCardBase + "hasFN"
	VCardHasEmail     = VCardBase + "hasEmail"
	VCardHasValue     = VCardBase + "hasValue"
)

// FOAF terms.
const (
	FOAFName         = FOAFBase + "name"
	FOAFMbox         = FOAFBase + "mbox"
	FOAFHomepage     = FOAFBase + "homepage"
	FOAFPage         = FOAFBase + "page"
	FOAFOrganization = FOAFBase + "Organization"
)

// schema.org terms.
const (
	SchemaDataset               = SchemaBase + "Dataset"
	SchemaName                  = SchemaBase + "name"
	SchemaDescription           = SchemaBase + "description"
	SchemaVersion               = SchemaBase + "version"
	SchemaIdentifier            = SchemaBase + "identifier"
	SchemaDatePublished         = SchemaBase + "datePublished"
	SchemaDateModified          = SchemaBase + "dateModified"
	SchemaLicense               = SchemaBase + "license"
	SchemaURL                   = SchemaBase + "url"
	SchemaIncludedInDataCatalog = SchemaBase + "includedInDataCatalog"
	SchemaDataCatalog           = SchemaBase + "DataCatalog"
	SchemaKeywords              = SchemaBase + "keywords"
	SchemaInLanguage            = SchemaBase + "inLanguage"
	SchemaPublisher             = SchemaBase + "publisher"
	SchemaOrganization          = SchemaBase + "Organization"
	SchemaContactPoint          = SchemaBase + "contactPoint"
	SchemaContactPointType      = SchemaBase + "ContactPoint"
	SchemaContactType           = SchemaBase + "contactType"
	SchemaEmail                 = SchemaBase + "email"
	SchemaTemporalCoverage      = SchemaBase + "temporalCoverage"
	SchemaSpatialCoverage       = SchemaBase + "spatialCoverage"
	SchemaPlace                 = SchemaBase + "Place"
	SchemaGeoShape              = SchemaBase + "GeoShape"
	SchemaGeo                   = SchemaBase + "geo"
	SchemaPolygon               = SchemaBase + "polygon"
	SchemaDistribution          = SchemaBase + "distribution"
	SchemaDataDownload          = SchemaBase + "DataDownload"
	SchemaEncodingFormat        = SchemaBase + "encodingFormat"
	SchemaContentURL            = SchemaBase + "contentUrl"
	SchemaContentSize           = SchemaBase + "contentSize"
	SchemaAbout                 = SchemaBase + "about"
	SchemaThing                 = SchemaBase + "Thing"
	SchemaStartDate             = SchemaBase + "startDate"
	SchemaEndDate               = SchemaBase + "endDate"
)

// W3C Time terms (see the TimeBase note above).
const (
	TimeHasBeginning       = TimeBase + "hasBeginning"
	TimeHasEnd             = TimeBase + "hasEnd"
	TimeInXSDDateTimeStamp = TimeBase + "inXSDDateTimeStamp"
	TimeInXSDDateTime      = TimeBase + "inXSDDateTime"
	TimeInXSDDate          = TimeBase + "inXSDDate"
)

// LOCN / GeoSPARQL / OWL / SPDX terms.
const (
	LOCNGeometry      = LOCNBase + "geometry"
	GSPWktLiteral     = GSPBase + "wktLiteral"
	OWLVersionInfo    = OWLBase + "versionInfo"
	SPDXChecksum      = SPDXBase + "checksum"
	SPDXChecksumClass = SPDXBase + "Checksum"
	SPDXAlgorithm     = SPDXBase + "algorithm"
	SPDXChecksumValue = SPDXBase + "checksumValue"
)

// RDF / RDFS / SKOS basics.
const (
	RDFType       = RDFBase + "type"
	RDFValue      = RDFBase + "value"
	RDFSLabel     = RDFSBase + "label"
	SKOSPrefLabel = SKOSBase + "prefLabel"
)

// XSD datatypes.
const (
	XSDDateTime  = XSDBase + "dateTime"
	XSDDecimal   = XSDBase + "decimal"
	XSDDuration  = XSDBase + "duration"
	XSDHexBinary = XSDBase + "hexBinary"
)

// GeoJSONIMT is the IANA media-type IRI used as the datatype of GeoJSON
// literals.
const GeoJSONIMT = "https://www.iana.org/assignments/media-types/application/vnd.geo+json"

// MailtoPrefix is prepended to bare e-mail addresses when they are written
// as reference nodes.
const MailtoPrefix = "mailto:"
