package qa

// Entry is one canned question/answer pair. Question casing is preserved in
// storage; matching is case-insensitive.
type Entry struct {
	Question string
	Answer   string
}

// DefaultEntries is the curated answer set, loaded once at startup and
// immutable afterwards.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Question: "What is AVM?",
			Answer:   "AVM stands for Automated Valuation Model.",
		},
		{
			Question: "What is WAIV?",
			Answer:   "WAIV is a real-estate valuation platform offering automated valuations, inspections, and market analytics for the US property market.",
		},
		{
			Question: "What is FASTR?",
			Answer:   "FASTR is WAIV's rapid valuation product that combines automated modeling with a streamlined inspection workflow.",
		},
		{
			Question: "What is a BPO?",
			Answer:   "A BPO (Broker Price Opinion) is a property value estimate prepared by a licensed real estate broker or agent, typically less formal than a full appraisal.",
		},
		{
			Question: "What is a CMA?",
			Answer:   "A CMA (Comparative Market Analysis) estimates a property's value by comparing it with recently sold, similar properties in the same area.",
		},
		{
			Question: "What is an appraisal?",
			Answer:   "An appraisal is a licensed appraiser's professional opinion of a property's market value, usually required by lenders before approving a mortgage.",
		},
		{
			Question: "What is a home inspection?",
			Answer:   "A home inspection is a visual examination of a property's condition, covering structure, systems, and safety items, performed by a qualified inspector.",
		},
		{
			Question: "What are comparables?",
			Answer:   "Comparables (comps) are recently sold properties similar in location, size, and condition, used as benchmarks when estimating a property's value.",
		},
		{
			Question: "How do I order a valuation?",
			Answer:   "You can order a valuation from the WAIV dashboard: choose the property, pick a product such as AVM or FASTR, and submit the order. Results appear in your order history.",
		},
		{
			Question: "How accurate are automated valuations?",
			Answer:   "Automated valuations are most accurate in areas with many recent, similar sales. Accuracy is usually reported as a confidence score alongside the estimate.",
		},
		{
			Question: "What is market value?",
			Answer:   "Market value is the most probable price a property would bring in a competitive, open market with informed buyers and sellers.",
		},
		{
			Question: "What is equity?",
			Answer:   "Equity is the difference between a property's market value and the outstanding balance of loans secured against it.",
		},
		{
			Question: "What is a mortgage pre-approval?",
			Answer:   "A pre-approval is a lender's conditional commitment for a loan amount based on verified income, assets, and credit, made before you shop for a home.",
		},
		{
			Question: "What is a property tax assessment?",
			Answer:   "A property tax assessment is the value a local assessor assigns to a property to calculate property taxes. It can differ from market value.",
		},
		{
			Question: "What is a title search?",
			Answer:   "A title search reviews public records to confirm a property's legal ownership and uncover liens, easements, or other claims before a sale closes.",
		},
		{
			Question: "What does an inspector check?",
			Answer:   "Inspectors check the roof, foundation, plumbing, electrical, HVAC, and visible structural elements, then report defects and safety issues.",
		},
		{
			Question: "What is a REIT?",
			Answer:   "A REIT (Real Estate Investment Trust) is a company that owns or finances income-producing real estate and lets investors buy shares in those portfolios.",
		},
		{
			Question: "What is an HOA?",
			Answer:   "An HOA (Homeowners Association) is an organization in a planned community that sets and enforces rules and collects dues for shared amenities.",
		},
		{
			Question: "How do I refinance my mortgage?",
			Answer:   "Refinancing replaces your current mortgage with a new loan, ideally at a lower rate. Lenders will re-verify income and usually require a new valuation.",
		},
		{
			Question: "What is zoning?",
			Answer:   "Zoning is local regulation dividing land into districts with rules about how properties in each district may be used and developed.",
		},
	}
}
