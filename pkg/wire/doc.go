// Package wire decodes raw provider page payloads into record mappings.
//
// The provider serves every endpoint in the same XML dialect: a document
// whose root element is named after the endpoint, with one <result> child
// per record. A page with exactly one record arrives as a single mapping,
// a page with several as a list, and an empty page omits the result key
// entirely. DecodePage normalizes all three shapes into a flat record
// slice so callers never see the difference.
//
// Example usage:
//
//	records, err := wire.DecodePage(body, "getCountries")
//	if err != nil {
//		return err
//	}
//	for _, rec := range records {
//		fmt.Println(rec.Field("name"))
//	}
//
// Decoding is handled by mxj, which maps XML to map[string]interface{}
// values. Element attributes appear as "-attr" keys and mixed text as
// "#text", following mxj conventions.
package wire
