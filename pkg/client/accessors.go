package client

import "github.com/metglobal/bookingcom-client/pkg/pagination"

// One accessor per catalog endpoint. Each call builds a fresh cursor,
// so callers can traverse the same feed repeatedly or in parallel.

// GetCities returns a cursor over the city feed.
func (c *Client) GetCities(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointCities, opts...)
}

// GetCountries returns a cursor over the country feed.
func (c *Client) GetCountries(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointCountries, opts...)
}

// GetDistricts returns a cursor over the district feed.
func (c *Client) GetDistricts(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointDistricts, opts...)
}

// GetDistrictHotels returns a cursor over district-to-hotel mappings.
func (c *Client) GetDistrictHotels(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointDistrictHotels, opts...)
}

// GetFacilityTypes returns a cursor over the facility type feed.
func (c *Client) GetFacilityTypes(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointFacilityTypes, opts...)
}

// GetHotelDescriptionPhotos returns a cursor over hotel description photos.
func (c *Client) GetHotelDescriptionPhotos(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointHotelDescriptionPhotos, opts...)
}

// GetHotelDescriptionTranslations returns a cursor over hotel description translations.
func (c *Client) GetHotelDescriptionTranslations(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointHotelDescriptionTranslations, opts...)
}

// GetHotelDescriptionTypes returns a cursor over hotel description types.
func (c *Client) GetHotelDescriptionTypes(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointHotelDescriptionTypes, opts...)
}

// GetHotelFacilities returns a cursor over hotel facilities.
func (c *Client) GetHotelFacilities(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointHotelFacilities, opts...)
}

// GetHotelFacilityTypes returns a cursor over hotel facility types.
func (c *Client) GetHotelFacilityTypes(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointHotelFacilityTypes, opts...)
}

// GetHotelLogoPhotos returns a cursor over hotel logo photos.
func (c *Client) GetHotelLogoPhotos(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointHotelLogoPhotos, opts...)
}

// GetHotelPhotos returns a cursor over hotel photos.
func (c *Client) GetHotelPhotos(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointHotelPhotos, opts...)
}

// GetHotelTranslations returns a cursor over hotel name translations.
func (c *Client) GetHotelTranslations(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointHotelTranslations, opts...)
}

// GetHotelTypes returns a cursor over the hotel type feed.
func (c *Client) GetHotelTypes(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointHotelTypes, opts...)
}

// GetHotels returns a cursor over the hotel feed.
func (c *Client) GetHotels(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointHotels, opts...)
}

// GetRegions returns a cursor over the region feed.
func (c *Client) GetRegions(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointRegions, opts...)
}

// GetRegionHotels returns a cursor over region-to-hotel mappings.
func (c *Client) GetRegionHotels(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointRegionHotels, opts...)
}

// GetRooms returns a cursor over the room feed.
func (c *Client) GetRooms(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointRooms, opts...)
}

// GetRoomTypes returns a cursor over the room type feed.
func (c *Client) GetRoomTypes(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointRoomTypes, opts...)
}

// GetRoomFacilityTypes returns a cursor over room facility types.
func (c *Client) GetRoomFacilityTypes(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointRoomFacilityTypes, opts...)
}

// GetRoomFacilities returns a cursor over room facilities.
func (c *Client) GetRoomFacilities(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointRoomFacilities, opts...)
}

// GetRoomTranslations returns a cursor over room name translations.
func (c *Client) GetRoomTranslations(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointRoomTranslations, opts...)
}

// GetRoomPhotos returns a cursor over room photos.
func (c *Client) GetRoomPhotos(opts ...Option) *pagination.Cursor {
	return c.cursor(EndpointRoomPhotos, opts...)
}
