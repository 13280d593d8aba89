package layouts

// CalculateTitle joins the product name and the page name into the document
// title, e.g. "ESG Mate - Build Something Amazing".
func CalculateTitle(product, page string) string {
	switch {
	case product == "":
		return page
	case page == "":
		return product
	}
	return product + " - " + page
}
